// Package mirror defines the port for the optional off-site copy of the
// ledger kept by the sync worker.
package mirror

import (
	"context"

	"kharcha/internal/core"
)

// Writer maintains a row-per-record mirror of the ledger. Records have no
// stable identity, so deletion matches rows by value.
type Writer interface {
	AppendRow(ctx context.Context, tx core.Transaction) error
	DeleteRow(ctx context.Context, tx core.Transaction) error
	Clear(ctx context.Context) error
}
