package amqp

import (
	"encoding/json"
	"time"

	"kharcha/internal/core"
)

// EventKind names a ledger mutation carried on the bus.
type EventKind string

const (
	EventAppended EventKind = "appended"
	EventDeleted  EventKind = "deleted"
	EventReset    EventKind = "reset"
)

// LedgerEvent describes one ledger mutation. Records carry no stable
// identity, so append and delete events carry the full four attributes and
// the mirror matches rows by value.
type LedgerEvent struct {
	Kind        EventKind `json:"kind"`
	AmountCents int64     `json:"amount_cents,omitempty"`
	Category    string    `json:"category,omitempty"`
	Type        string    `json:"type,omitempty"`
	Date        string    `json:"date,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewAppendedEvent creates an event for a freshly appended record.
func NewAppendedEvent(tx core.Transaction) *LedgerEvent {
	return newRecordEvent(EventAppended, tx)
}

// NewDeletedEvent creates an event for a deleted record.
func NewDeletedEvent(tx core.Transaction) *LedgerEvent {
	return newRecordEvent(EventDeleted, tx)
}

// NewResetEvent creates an event for a full ledger reset.
func NewResetEvent() *LedgerEvent {
	return &LedgerEvent{Kind: EventReset, Timestamp: time.Now()}
}

func newRecordEvent(kind EventKind, tx core.Transaction) *LedgerEvent {
	return &LedgerEvent{
		Kind:        kind,
		AmountCents: tx.Amount.Cents,
		Category:    tx.Category,
		Type:        string(tx.Type),
		Date:        tx.Date.String(),
		Timestamp:   time.Now(),
	}
}

// Transaction reconstructs the record carried by an append or delete event.
func (e *LedgerEvent) Transaction() (core.Transaction, error) {
	date, err := core.ParseDate(e.Date)
	if err != nil {
		return core.Transaction{}, err
	}
	tx := core.Transaction{
		Amount:   core.Money{Cents: e.AmountCents},
		Category: e.Category,
		Type:     core.TransactionType(e.Type),
		Date:     date,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return tx, nil
}

// ToJSON converts the event to JSON bytes.
func (e *LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// LedgerEventFromJSON creates an event from JSON bytes.
func LedgerEventFromJSON(data []byte) (*LedgerEvent, error) {
	var e LedgerEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
