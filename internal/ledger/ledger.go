// Package ledger defines the port for the durable transaction store.
// Backends live in the subpackages (csvfile, sqlite, memory) and are
// selected by internal/backend.
package ledger

import (
	"context"
	"errors"

	"kharcha/internal/core"
)

// Store owns the ordered sequence of transaction records and its backing
// storage. Insertion order is chronological append order, and records are
// addressed by ordinal position only: deleting position n shifts every
// later record down by one.
//
// Stores provide no cross-process guarantees; in-process callers are
// serialized by a single mutex inside each backend.
type Store interface {
	// Append adds a validated record to the end of the sequence and
	// durably writes the update.
	Append(ctx context.Context, tx core.Transaction) error

	// ListAll returns every record in storage order.
	ListAll(ctx context.Context) ([]core.Transaction, error)

	// DeleteAt removes and returns the record at the zero-based position.
	// Out-of-range positions return ErrIndexOutOfRange and leave storage
	// unchanged.
	DeleteAt(ctx context.Context, position int) (core.Transaction, error)

	// Reset replaces the sequence with an empty, schema-bearing one.
	// Irreversible.
	Reset(ctx context.Context) error

	Close() error
}

// ErrIndexOutOfRange reports a position-addressed operation outside the
// current sequence bounds.
var ErrIndexOutOfRange = errors.New("transaction index out of range")

// Summarize materializes the full sequence and aggregates it.
func Summarize(ctx context.Context, s Store) (core.Summary, error) {
	txs, err := s.ListAll(ctx)
	if err != nil {
		return core.Summary{}, err
	}
	return core.Summarize(txs), nil
}
