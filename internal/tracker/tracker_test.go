package tracker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"kharcha/internal/core"
	"kharcha/internal/ledger"
	"kharcha/internal/ledger/memory"
)

// failingStore returns a storage fault from every operation.
type failingStore struct{}

var errBroken = errors.New("disk on fire")

func (failingStore) Append(context.Context, core.Transaction) error { return errBroken }
func (failingStore) ListAll(context.Context) ([]core.Transaction, error) {
	return nil, errBroken
}
func (failingStore) DeleteAt(context.Context, int) (core.Transaction, error) {
	return core.Transaction{}, errBroken
}
func (failingStore) Reset(context.Context) error { return nil }
func (failingStore) Close() error                { return nil }

var _ ledger.Store = failingStore{}

func seed(t *testing.T, store ledger.Store, cents int64, category string, typ core.TransactionType) {
	t.Helper()
	err := store.Append(context.Background(), core.Transaction{
		Amount:   core.Money{Cents: cents},
		Category: category,
		Type:     typ,
		Date:     core.NewDate(2025, 6, 1),
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestAddSavesCompleteExtraction(t *testing.T) {
	store := memory.New()
	svc := New(store, nil)

	res := svc.Add(context.Background(), "I spent 150 on groceries")
	if !res.Success {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.Message != "Saved: ₹150.00 on Groceries (Expense)" {
		t.Fatalf("unexpected message %q", res.Message)
	}
	if res.Transaction == nil || res.Transaction.Amount != 150.0 ||
		res.Transaction.Category != "Groceries" || res.Transaction.Type != "Expense" {
		t.Fatalf("unexpected transaction %+v", res.Transaction)
	}

	txs, err := store.ListAll(context.Background())
	if err != nil || len(txs) != 1 {
		t.Fatalf("expected 1 stored record, got %d (%v)", len(txs), err)
	}
}

func TestAddRejectsIncompleteExtraction(t *testing.T) {
	store := memory.New()
	svc := New(store, nil)

	res := svc.Add(context.Background(), "what a lovely day")
	if res.Success {
		t.Fatalf("expected failure envelope")
	}
	if res.Message != CouldNotUnderstandMessage {
		t.Fatalf("unexpected message %q", res.Message)
	}
	if res.Extracted == nil {
		t.Fatalf("expected partial extraction in the envelope")
	}
	if res.Extracted.Amount != nil || res.Extracted.Type != nil {
		t.Fatalf("expected null fields, got %+v", res.Extracted)
	}

	txs, _ := store.ListAll(context.Background())
	if len(txs) != 0 {
		t.Fatalf("incomplete extraction must not persist")
	}
}

func TestAddSurfacesStorageFailure(t *testing.T) {
	svc := New(failingStore{}, nil)
	res := svc.Add(context.Background(), "I spent 150 on groceries")
	if res.Success {
		t.Fatalf("expected failure envelope")
	}
	if !strings.Contains(res.Message, "Error saving transaction") {
		t.Fatalf("unexpected message %q", res.Message)
	}
}

func TestSummaryTotals(t *testing.T) {
	store := memory.New()
	seed(t, store, 10000, "Food & Dining", core.Expense)
	seed(t, store, 5000, "Groceries", core.Expense)
	seed(t, store, 20000, "Salary", core.Income)

	svc := New(store, nil)
	res := svc.Summary(context.Background())
	if !res.Success || res.Data == nil {
		t.Fatalf("expected success with data, got %+v", res)
	}
	if res.Data.TotalExpense != 150.0 || res.Data.TotalIncome != 200.0 || res.Data.Balance != 50.0 {
		t.Fatalf("unexpected totals: %+v", res.Data)
	}
	if res.Data.TotalRecords != 3 || len(res.Data.RecentTransactions) != 3 {
		t.Fatalf("unexpected record counts: %+v", res.Data)
	}
	if res.Data.ExpensesByCategory["Groceries"] != 50.0 {
		t.Fatalf("unexpected grouping: %+v", res.Data.ExpensesByCategory)
	}
}

func TestSummaryEmptyLedger(t *testing.T) {
	svc := New(memory.New(), nil)
	res := svc.Summary(context.Background())
	if !res.Success || res.Data == nil {
		t.Fatalf("empty ledger must summarize successfully, got %+v", res)
	}
	if res.Message != "No records found." {
		t.Fatalf("unexpected message %q", res.Message)
	}
	if res.Data.TotalRecords != 0 || res.Data.Balance != 0 {
		t.Fatalf("unexpected data: %+v", res.Data)
	}
}

func TestSummaryStorageFailure(t *testing.T) {
	svc := New(failingStore{}, nil)
	res := svc.Summary(context.Background())
	if res.Success || !strings.Contains(res.Message, "Error generating summary") {
		t.Fatalf("unexpected envelope: %+v", res)
	}
}

func TestTransactionsListsInOrder(t *testing.T) {
	store := memory.New()
	seed(t, store, 100, "A", core.Expense)
	seed(t, store, 200, "B", core.Income)

	svc := New(store, nil)
	res := svc.Transactions(context.Background())
	if !res.Success || len(res.Data) != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Data[0].Category != "A" || res.Data[1].Category != "B" {
		t.Fatalf("order not preserved: %+v", res.Data)
	}
}

func TestDeleteInvalidIndex(t *testing.T) {
	store := memory.New()
	seed(t, store, 100, "A", core.Expense)

	svc := New(store, nil)
	for _, pos := range []int{-1, 1, 42} {
		res := svc.Delete(context.Background(), pos)
		if res.Success || res.Message != "Invalid transaction index" {
			t.Fatalf("position %d: unexpected envelope %+v", pos, res)
		}
	}

	txs, _ := store.ListAll(context.Background())
	if len(txs) != 1 {
		t.Fatalf("failed delete must leave store unchanged")
	}
}

func TestDeleteReturnsRecord(t *testing.T) {
	store := memory.New()
	seed(t, store, 15000, "Groceries", core.Expense)

	svc := New(store, nil)
	res := svc.Delete(context.Background(), 0)
	if !res.Success || res.Deleted == nil {
		t.Fatalf("unexpected envelope: %+v", res)
	}
	if res.Deleted.Amount != 150.0 || res.Deleted.Category != "Groceries" {
		t.Fatalf("unexpected deleted record: %+v", res.Deleted)
	}
}

func TestResetClearsLedger(t *testing.T) {
	store := memory.New()
	seed(t, store, 100, "A", core.Expense)

	svc := New(store, nil)
	res := svc.Reset(context.Background())
	if !res.Success || res.Message != "All data has been reset." {
		t.Fatalf("unexpected envelope: %+v", res)
	}

	summary := svc.Summary(context.Background())
	if summary.Data == nil || summary.Data.TotalRecords != 0 {
		t.Fatalf("ledger not empty after reset: %+v", summary.Data)
	}
}

func TestCloseWithNilEvents(t *testing.T) {
	svc := New(memory.New(), nil)
	if err := svc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
