// Package csvfile persists the ledger as a single schema-first CSV file:
// a header row naming the four attributes, one row per record. Every
// mutation is a full read / mutate in memory / atomic rewrite cycle, so the
// file on disk is never half-written.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"kharcha/internal/core"
	"kharcha/internal/ledger"
)

var header = []string{"Amount", "Category", "Type", "Date"}

// Store is a mutex-guarded CSV-file ledger store.
type Store struct {
	mu   sync.Mutex
	path string
}

var _ ledger.Store = (*Store)(nil)

// New opens the store at path, creating an empty schema-bearing file (and
// any missing parent directories) on first access.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	s := &Store{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.writeAll(nil); err != nil {
			return nil, fmt.Errorf("initialize ledger file: %w", err)
		}
		slog.Info("Initialized empty ledger file", "path", path)
	} else if err != nil {
		return nil, fmt.Errorf("stat ledger file: %w", err)
	}
	return s, nil
}

func (s *Store) Append(_ context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.readAll()
	if err != nil {
		return err
	}
	txs = append(txs, tx)
	return s.writeAll(txs)
}

func (s *Store) ListAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

func (s *Store) DeleteAt(_ context.Context, position int) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	txs, err := s.readAll()
	if err != nil {
		return core.Transaction{}, err
	}
	if position < 0 || position >= len(txs) {
		return core.Transaction{}, ledger.ErrIndexOutOfRange
	}
	deleted := txs[position]
	txs = append(txs[:position], txs[position+1:]...)
	if err := s.writeAll(txs); err != nil {
		return core.Transaction{}, err
	}
	return deleted, nil
}

func (s *Store) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeAll(nil)
}

func (s *Store) Close() error { return nil }

// readAll loads the entire file into memory. A missing header or a
// malformed row is a storage failure; the store does not repair corrupted
// files.
func (s *Store) readAll() ([]core.Transaction, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open ledger file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read ledger file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("ledger file %s is missing its header row", s.path)
	}
	if len(rows[0]) != len(header) {
		return nil, fmt.Errorf("ledger file %s has a malformed header", s.path)
	}

	txs := make([]core.Transaction, 0, len(rows)-1)
	for i, row := range rows[1:] {
		tx, err := decodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("ledger file %s row %d: %w", s.path, i+1, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// writeAll rewrites the whole sequence through a temp file and rename so a
// crash mid-write never leaves a truncated ledger behind.
func (s *Store) writeAll(txs []core.Transaction) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".ledger-*.csv")
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	write := func() error {
		if err := w.Write(header); err != nil {
			return err
		}
		for _, tx := range txs {
			if err := w.Write(encodeRow(tx)); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	}
	if err := write(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write ledger file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp ledger file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace ledger file: %w", err)
	}
	return nil
}

func encodeRow(tx core.Transaction) []string {
	return []string{
		tx.Amount.DecimalString(),
		tx.Category,
		string(tx.Type),
		tx.Date.String(),
	}
}

func decodeRow(row []string) (core.Transaction, error) {
	if len(row) != len(header) {
		return core.Transaction{}, fmt.Errorf("expected %d columns, got %d", len(header), len(row))
	}
	cents, err := core.ParseDecimalToCents(row[0])
	if err != nil {
		return core.Transaction{}, fmt.Errorf("amount %q: %w", row[0], err)
	}
	typ := core.TransactionType(row[2])
	if err := typ.Validate(); err != nil {
		return core.Transaction{}, fmt.Errorf("type %q: %w", row[2], err)
	}
	date, err := core.ParseDate(row[3])
	if err != nil {
		return core.Transaction{}, fmt.Errorf("date %q: %w", row[3], err)
	}
	tx := core.Transaction{
		Amount:   core.Money{Cents: cents},
		Category: row[1],
		Type:     typ,
		Date:     date,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return tx, nil
}
