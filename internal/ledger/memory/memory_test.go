package memory

import (
	"context"
	"errors"
	"testing"

	"kharcha/internal/core"
	"kharcha/internal/ledger"
)

func tx(cents int64, category string) core.Transaction {
	return core.Transaction{
		Amount:   core.Money{Cents: cents},
		Category: category,
		Type:     core.Expense,
		Date:     core.NewDate(2025, 6, 1),
	}
}

func TestAppendAndList(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.Append(ctx, tx(100, "A")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := s.Append(ctx, tx(200, "B")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	txs, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(txs) != 2 || txs[0].Category != "A" || txs[1].Category != "B" {
		t.Fatalf("unexpected records: %+v", txs)
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.Append(ctx, tx(100, "A")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	txs, _ := s.ListAll(ctx)
	txs[0].Category = "mutated"

	again, _ := s.ListAll(ctx)
	if again[0].Category != "A" {
		t.Fatalf("store leaked its backing slice")
	}
}

func TestDeleteAtAndReset(t *testing.T) {
	s := New()
	ctx := context.Background()
	for _, c := range []string{"A", "B", "C"} {
		if err := s.Append(ctx, tx(100, c)); err != nil {
			t.Fatalf("Append %s: %v", c, err)
		}
	}

	deleted, err := s.DeleteAt(ctx, 1)
	if err != nil || deleted.Category != "B" {
		t.Fatalf("DeleteAt: got %+v, %v", deleted, err)
	}
	if _, err := s.DeleteAt(ctx, 5); !errors.Is(err, ledger.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}

	if err := s.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	txs, _ := s.ListAll(ctx)
	if len(txs) != 0 {
		t.Fatalf("expected empty store after reset, got %d", len(txs))
	}
}

func TestAppendValidates(t *testing.T) {
	s := New()
	if err := s.Append(context.Background(), core.Transaction{}); err == nil {
		t.Fatalf("expected validation error")
	}
}
