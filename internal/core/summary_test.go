package core

import "testing"

func tx(cents int64, category string, typ TransactionType) Transaction {
	return Transaction{
		Amount:   Money{Cents: cents},
		Category: category,
		Type:     typ,
		Date:     NewDate(2025, 1, 1),
	}
}

func TestSummarizeTotalsAndBalance(t *testing.T) {
	s := Summarize([]Transaction{
		tx(10000, "Food & Dining", Expense),
		tx(5000, "Groceries", Expense),
		tx(20000, "Salary", Income),
	})

	if s.TotalExpense.Cents != 15000 {
		t.Fatalf("total expense = %d, want 15000", s.TotalExpense.Cents)
	}
	if s.TotalIncome.Cents != 20000 {
		t.Fatalf("total income = %d, want 20000", s.TotalIncome.Cents)
	}
	if s.Balance != 5000 {
		t.Fatalf("balance = %d, want 5000", s.Balance)
	}
	if s.TotalRecords != 3 {
		t.Fatalf("total records = %d, want 3", s.TotalRecords)
	}
}

func TestSummarizeGroupsByCategory(t *testing.T) {
	s := Summarize([]Transaction{
		tx(100, "Groceries", Expense),
		tx(200, "Groceries", Expense),
		tx(300, "Transportation", Expense),
		tx(400, "Salary", Income),
	})

	if got := s.ExpensesByCategory["Groceries"].Cents; got != 300 {
		t.Fatalf("Groceries = %d, want 300", got)
	}
	if got := s.ExpensesByCategory["Transportation"].Cents; got != 300 {
		t.Fatalf("Transportation = %d, want 300", got)
	}
	if len(s.ExpensesByCategory) != 2 {
		t.Fatalf("expense categories = %d, want 2", len(s.ExpensesByCategory))
	}
	if got := s.IncomeByCategory["Salary"].Cents; got != 400 {
		t.Fatalf("Salary = %d, want 400", got)
	}
}

func TestSummarizeRecentKeepsLastTen(t *testing.T) {
	var txs []Transaction
	for i := int64(1); i <= 15; i++ {
		txs = append(txs, tx(i*100, "Misc", Expense))
	}
	s := Summarize(txs)

	if len(s.RecentTransactions) != RecentLimit {
		t.Fatalf("recent = %d, want %d", len(s.RecentTransactions), RecentLimit)
	}
	if s.RecentTransactions[0].Amount.Cents != 600 {
		t.Fatalf("first recent = %d, want 600", s.RecentTransactions[0].Amount.Cents)
	}
	if s.RecentTransactions[9].Amount.Cents != 1500 {
		t.Fatalf("last recent = %d, want 1500", s.RecentTransactions[9].Amount.Cents)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalIncome.Cents != 0 || s.TotalExpense.Cents != 0 || s.Balance != 0 {
		t.Fatalf("expected zero totals, got %+v", s)
	}
	if len(s.IncomeByCategory) != 0 || len(s.ExpensesByCategory) != 0 {
		t.Fatalf("expected empty maps")
	}
	if len(s.RecentTransactions) != 0 || s.TotalRecords != 0 {
		t.Fatalf("expected no records")
	}
}
