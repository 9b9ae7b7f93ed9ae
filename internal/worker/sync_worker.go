// Package worker applies ledger events to the off-site mirror.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"kharcha/internal/amqp"
	"kharcha/internal/mirror"
)

// SyncWorker consumes ledger events and replays them against a mirror.
type SyncWorker struct {
	mirror mirror.Writer
}

func NewSyncWorker(m mirror.Writer) *SyncWorker {
	return &SyncWorker{mirror: m}
}

// HandleEvent dispatches a single ledger event. A returned error requeues
// the delivery.
func (w *SyncWorker) HandleEvent(ctx context.Context, event *amqp.LedgerEvent) error {
	slog.InfoContext(ctx, "Processing ledger event", "kind", event.Kind)

	switch event.Kind {
	case amqp.EventAppended:
		tx, err := event.Transaction()
		if err != nil {
			return fmt.Errorf("decode appended record: %w", err)
		}
		if err := w.mirror.AppendRow(ctx, tx); err != nil {
			return fmt.Errorf("mirror append: %w", err)
		}

	case amqp.EventDeleted:
		tx, err := event.Transaction()
		if err != nil {
			return fmt.Errorf("decode deleted record: %w", err)
		}
		if err := w.mirror.DeleteRow(ctx, tx); err != nil {
			return fmt.Errorf("mirror delete: %w", err)
		}

	case amqp.EventReset:
		if err := w.mirror.Clear(ctx); err != nil {
			return fmt.Errorf("mirror clear: %w", err)
		}

	default:
		// Unknown kinds are dropped, not requeued; requeueing would spin
		// forever on a payload this worker can never handle.
		slog.WarnContext(ctx, "Ignoring unknown ledger event kind", "kind", event.Kind)
	}

	return nil
}
