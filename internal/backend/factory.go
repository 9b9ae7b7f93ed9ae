package backend

import (
	"context"
	"fmt"
	"log/slog"

	"kharcha/internal/ledger"

	"kharcha/internal/ledger/csvfile"
	"kharcha/internal/ledger/memory"
	"kharcha/internal/ledger/sqlite"
)

// DefaultFactory implements the Factory interface.
type DefaultFactory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

func (f *DefaultFactory) CreateStore(_ context.Context, config Config) (ledger.Store, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case CSVBackend:
		if config.CSVPath == "" {
			return nil, fmt.Errorf("CSV path is required for csv backend")
		}
		store, err := csvfile.New(config.CSVPath)
		if err != nil {
			return nil, fmt.Errorf("initialize csv store: %w", err)
		}
		f.logger.Info("Initialized CSV backend", "path", config.CSVPath)
		return store, nil

	case SQLiteBackend:
		if config.SQLiteDBPath == "" {
			return nil, fmt.Errorf("SQLite database path is required for sqlite backend")
		}
		store, err := sqlite.New(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
		return store, nil

	case MemoryBackend:
		store := memory.New()
		f.logger.Info("Initialized memory backend")
		return store, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
