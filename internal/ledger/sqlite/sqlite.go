// Package sqlite backs the ledger store with an embedded SQLite database.
// Rows keep insertion order through their autoincrement id; position
// addressing and deletion semantics match the flat-file store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"kharcha/internal/core"
	"kharcha/internal/ledger"

	_ "modernc.org/sqlite"
)

type Store struct {
	mu sync.Mutex
	db *sql.DB
}

var _ ledger.Store = (*Store)(nil)

// New opens (or creates) the database at dbPath and applies migrations.
func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Append(ctx context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (amount_cents, category, type, date) VALUES (?, ?, ?, ?)`,
		tx.Amount.Cents, tx.Category, string(tx.Type), tx.Date.String())
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func (s *Store) ListAll(ctx context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listAll(ctx)
}

func (s *Store) listAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT amount_cents, category, type, date FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			cents    int64
			category string
			typ      string
			date     string
		)
		if err := rows.Scan(&cents, &category, &typ, &date); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		d, err := core.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("stored date %q: %w", date, err)
		}
		txs = append(txs, core.Transaction{
			Amount:   core.Money{Cents: cents},
			Category: category,
			Type:     core.TransactionType(typ),
			Date:     d,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func (s *Store) DeleteAt(ctx context.Context, position int) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if position < 0 {
		return core.Transaction{}, ledger.ErrIndexOutOfRange
	}

	dbtx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("begin delete: %w", err)
	}
	defer dbtx.Rollback()

	var (
		id       int64
		cents    int64
		category string
		typ      string
		date     string
	)
	err = dbtx.QueryRowContext(ctx,
		`SELECT id, amount_cents, category, type, date FROM transactions ORDER BY id LIMIT 1 OFFSET ?`,
		position).Scan(&id, &cents, &category, &typ, &date)
	if err == sql.ErrNoRows {
		return core.Transaction{}, ledger.ErrIndexOutOfRange
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("locate transaction at position %d: %w", position, err)
	}

	if _, err := dbtx.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return core.Transaction{}, fmt.Errorf("delete transaction: %w", err)
	}
	if err := dbtx.Commit(); err != nil {
		return core.Transaction{}, fmt.Errorf("commit delete: %w", err)
	}

	d, err := core.ParseDate(date)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("stored date %q: %w", date, err)
	}
	return core.Transaction{
		Amount:   core.Money{Cents: cents},
		Category: category,
		Type:     core.TransactionType(typ),
		Date:     d,
	}, nil
}

func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("reset transactions: %w", err)
	}
	return nil
}
