package core

// RecentLimit is how many trailing records a summary reports.
const RecentLimit = 10

// Summary aggregates a full materialization of the ledger.
//
// Category map iteration order is not guaranteed; callers must not rely
// on it.
type Summary struct {
	TotalIncome        Money
	TotalExpense       Money
	Balance            int64 // cents; income minus expense, may be negative
	IncomeByCategory   map[string]Money
	ExpensesByCategory map[string]Money
	RecentTransactions []Transaction
	TotalRecords       int
}

// Summarize computes totals, per-category breakdowns and the last
// RecentLimit records in storage order. An empty input yields zero totals
// and empty maps; empty is not an error.
func Summarize(txs []Transaction) Summary {
	s := Summary{
		IncomeByCategory:   make(map[string]Money),
		ExpensesByCategory: make(map[string]Money),
		TotalRecords:       len(txs),
	}
	for _, tx := range txs {
		switch tx.Type {
		case Income:
			s.TotalIncome.Cents += tx.Amount.Cents
			cur := s.IncomeByCategory[tx.Category]
			cur.Cents += tx.Amount.Cents
			s.IncomeByCategory[tx.Category] = cur
		case Expense:
			s.TotalExpense.Cents += tx.Amount.Cents
			cur := s.ExpensesByCategory[tx.Category]
			cur.Cents += tx.Amount.Cents
			s.ExpensesByCategory[tx.Category] = cur
		}
	}
	s.Balance = s.TotalIncome.Cents - s.TotalExpense.Cents

	start := 0
	if len(txs) > RecentLimit {
		start = len(txs) - RecentLimit
	}
	s.RecentTransactions = append([]Transaction(nil), txs[start:]...)
	return s
}
