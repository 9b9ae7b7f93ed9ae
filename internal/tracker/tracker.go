// Package tracker orchestrates extraction and the ledger store, and hands
// transport layers ready-made success/failure envelopes.
package tracker

import (
	"context"
	"fmt"
	"log/slog"

	"kharcha/internal/amqp"
	"kharcha/internal/core"
	"kharcha/internal/extract"
	"kharcha/internal/ledger"
	"kharcha/internal/log"
)

// CouldNotUnderstandMessage is returned when extraction yields an
// incomplete record.
const CouldNotUnderstandMessage = "Could not understand. Try: 'I spent 100 on groceries' or 'I received 500 from freelance'"

// Service wires the extractor to a ledger store. The AMQP client is
// optional; when present, ledger mutations are mirrored best-effort and
// publish failures never fail the caller's request.
type Service struct {
	store  ledger.Store
	events *amqp.Client
}

func New(store ledger.Store, events *amqp.Client) *Service {
	return &Service{store: store, events: events}
}

// Add extracts a transaction from free text and appends it when the
// extraction is complete.
func (s *Service) Add(ctx context.Context, message string) AddResult {
	res := extract.Extract(message)
	if !res.Complete() {
		extracted := toExtractedJSON(res)
		return AddResult{
			Success:   false,
			Message:   CouldNotUnderstandMessage,
			Extracted: &extracted,
		}
	}

	tx := core.Transaction{
		Amount:   res.Amount,
		Category: res.Category,
		Type:     res.Type,
		Date:     core.Today(),
	}
	// Extraction only emits positive amounts, but reject defensively
	// before persisting.
	if err := tx.Validate(); err != nil {
		extracted := toExtractedJSON(res)
		return AddResult{
			Success:   false,
			Message:   CouldNotUnderstandMessage,
			Extracted: &extracted,
		}
	}

	if err := s.store.Append(ctx, tx); err != nil {
		slog.ErrorContext(ctx, "Failed to save transaction",
			log.FieldError, err,
			log.FieldAmount, tx.Amount.Cents,
			log.FieldCategory, tx.Category,
			log.FieldTxType, tx.Type)
		return AddResult{
			Success: false,
			Message: fmt.Sprintf("Error saving transaction: %v", err),
		}
	}

	slog.InfoContext(ctx, "Transaction saved",
		log.FieldAmount, tx.Amount.Cents,
		log.FieldCategory, tx.Category,
		log.FieldTxType, tx.Type,
		"date", tx.Date.String())

	s.publish(ctx, amqp.NewAppendedEvent(tx))

	saved := toTransactionJSON(tx)
	return AddResult{
		Success:     true,
		Message:     fmt.Sprintf("Saved: %s on %s (%s)", tx.Amount.Format(), tx.Category, tx.Type),
		Transaction: &saved,
	}
}

// Summary aggregates the full ledger.
func (s *Service) Summary(ctx context.Context) SummaryResult {
	summary, err := ledger.Summarize(ctx, s.store)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to generate summary", log.FieldError, err)
		return SummaryResult{
			Success: false,
			Message: fmt.Sprintf("Error generating summary: %v", err),
		}
	}

	data := toSummaryJSON(summary)
	result := SummaryResult{Success: true, Data: &data}
	if summary.TotalRecords == 0 {
		result.Message = "No records found."
	}
	return result
}

// Transactions lists every record in storage order.
func (s *Service) Transactions(ctx context.Context) TransactionsResult {
	txs, err := s.store.ListAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to fetch transactions", log.FieldError, err)
		return TransactionsResult{
			Success: false,
			Message: fmt.Sprintf("Error fetching transactions: %v", err),
		}
	}

	data := make([]TransactionJSON, 0, len(txs))
	for _, tx := range txs {
		data = append(data, toTransactionJSON(tx))
	}
	return TransactionsResult{Success: true, Data: data}
}

// Delete removes the record at the zero-based position. Invalid positions
// are a failure envelope, not a fault, and leave the store unchanged.
func (s *Service) Delete(ctx context.Context, position int) DeleteResult {
	deleted, err := s.store.DeleteAt(ctx, position)
	if err == ledger.ErrIndexOutOfRange {
		return DeleteResult{Success: false, Message: "Invalid transaction index"}
	}
	if err != nil {
		slog.ErrorContext(ctx, "Failed to delete transaction", log.FieldError, err, log.FieldPosition, position)
		return DeleteResult{
			Success: false,
			Message: fmt.Sprintf("Error deleting transaction: %v", err),
		}
	}

	slog.InfoContext(ctx, "Transaction deleted",
		log.FieldPosition, position,
		log.FieldAmount, deleted.Amount.Cents,
		log.FieldCategory, deleted.Category)

	s.publish(ctx, amqp.NewDeletedEvent(deleted))

	gone := toTransactionJSON(deleted)
	return DeleteResult{
		Success: true,
		Message: fmt.Sprintf("Transaction deleted: %s on %s", deleted.Amount.Format(), deleted.Category),
		Deleted: &gone,
	}
}

// Reset clears the entire ledger. Irreversible.
func (s *Service) Reset(ctx context.Context) ResetResult {
	if err := s.store.Reset(ctx); err != nil {
		slog.ErrorContext(ctx, "Failed to reset ledger", log.FieldError, err)
		return ResetResult{
			Success: false,
			Message: fmt.Sprintf("Error resetting data: %v", err),
		}
	}

	slog.InfoContext(ctx, "Ledger reset")
	s.publish(ctx, amqp.NewResetEvent())

	return ResetResult{Success: true, Message: "All data has been reset."}
}

func (s *Service) publish(ctx context.Context, event *amqp.LedgerEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		// Mirror sync is best-effort; the local write already succeeded.
		slog.ErrorContext(ctx, "Failed to publish ledger event",
			log.FieldError, err,
			"kind", event.Kind)
	}
}

// Close releases the store and the event bus connection.
func (s *Service) Close() error {
	var errs []error

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("store: %w", err))
		}
	}

	if s.events != nil {
		if err := s.events.Close(); err != nil {
			errs = append(errs, fmt.Errorf("amqp: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close tracker service: %v", errs)
	}

	return nil
}
