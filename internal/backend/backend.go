// Package backend selects and constructs the ledger store named by the
// application configuration.
package backend

import (
	"context"

	"kharcha/internal/ledger"
)

// Factory creates stores based on configuration. The caller owns the
// returned store's lifecycle (Close on shutdown).
type Factory interface {
	CreateStore(ctx context.Context, config Config) (ledger.Store, error)
}

// Config holds configuration for store creation.
type Config struct {
	Type Type

	// csv backend
	CSVPath string

	// sqlite backend
	SQLiteDBPath string
}

// Type names a ledger backend.
type Type string

const (
	CSVBackend    Type = "csv"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

func (t Type) String() string { return string(t) }

func (t Type) IsValid() bool {
	switch t {
	case CSVBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Types returns all valid backend types.
func Types() []Type {
	return []Type{CSVBackend, SQLiteBackend, MemoryBackend}
}
