// Package memory provides an in-memory ledger store: same semantics as the
// file-backed stores, no durability. Used by tests and as a throwaway
// backend.
package memory

import (
	"context"
	"sync"

	"kharcha/internal/core"
	"kharcha/internal/ledger"
)

type Store struct {
	mu    sync.Mutex
	items []core.Transaction
}

var _ ledger.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) Append(_ context.Context, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, tx)
	return nil
}

func (s *Store) ListAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.items...), nil
}

func (s *Store) DeleteAt(_ context.Context, position int) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if position < 0 || position >= len(s.items) {
		return core.Transaction{}, ledger.ErrIndexOutOfRange
	}
	deleted := s.items[position]
	s.items = append(s.items[:position], s.items[position+1:]...)
	return deleted, nil
}

func (s *Store) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}

func (s *Store) Close() error { return nil }
