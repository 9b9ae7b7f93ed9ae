package tracker

import (
	"kharcha/internal/core"
	"kharcha/internal/extract"
)

// Every tracker operation returns a success/failure envelope with a
// human-readable message. Transport layers encode these directly; no raw
// storage fault ever crosses this boundary.

// TransactionJSON is the wire shape of a ledger record.
type TransactionJSON struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Date     string  `json:"date"`
}

func toTransactionJSON(tx core.Transaction) TransactionJSON {
	return TransactionJSON{
		Amount:   tx.Amount.Float64(),
		Category: tx.Category,
		Type:     string(tx.Type),
		Date:     tx.Date.String(),
	}
}

// ExtractedJSON reports a (possibly partial) extraction; absent fields are
// null.
type ExtractedJSON struct {
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Type     *string  `json:"type"`
}

func toExtractedJSON(res extract.Result) ExtractedJSON {
	var e ExtractedJSON
	if !res.Amount.IsZero() {
		v := res.Amount.Float64()
		e.Amount = &v
	}
	if res.Category != "" {
		v := res.Category
		e.Category = &v
	}
	if res.Type.Validate() == nil {
		v := string(res.Type)
		e.Type = &v
	}
	return e
}

// AddResult is the outcome of adding a transaction from free text.
type AddResult struct {
	Success     bool             `json:"success"`
	Message     string           `json:"message"`
	Transaction *TransactionJSON `json:"transaction,omitempty"`
	Extracted   *ExtractedJSON   `json:"extracted,omitempty"`
}

// SummaryJSON is the wire shape of a ledger summary.
type SummaryJSON struct {
	TotalIncome        float64            `json:"total_income"`
	TotalExpense       float64            `json:"total_expense"`
	Balance            float64            `json:"balance"`
	IncomeByCategory   map[string]float64 `json:"income_by_category"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
	RecentTransactions []TransactionJSON  `json:"recent_transactions"`
	TotalRecords       int                `json:"total_records"`
}

func toSummaryJSON(s core.Summary) SummaryJSON {
	out := SummaryJSON{
		TotalIncome:        s.TotalIncome.Float64(),
		TotalExpense:       s.TotalExpense.Float64(),
		Balance:            float64(s.Balance) / 100.0,
		IncomeByCategory:   make(map[string]float64, len(s.IncomeByCategory)),
		ExpensesByCategory: make(map[string]float64, len(s.ExpensesByCategory)),
		RecentTransactions: make([]TransactionJSON, 0, len(s.RecentTransactions)),
		TotalRecords:       s.TotalRecords,
	}
	for cat, amt := range s.IncomeByCategory {
		out.IncomeByCategory[cat] = amt.Float64()
	}
	for cat, amt := range s.ExpensesByCategory {
		out.ExpensesByCategory[cat] = amt.Float64()
	}
	for _, tx := range s.RecentTransactions {
		out.RecentTransactions = append(out.RecentTransactions, toTransactionJSON(tx))
	}
	return out
}

// SummaryResult is the outcome of a summary request.
type SummaryResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    *SummaryJSON `json:"data,omitempty"`
}

// TransactionsResult is the outcome of a full listing.
type TransactionsResult struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    []TransactionJSON `json:"data,omitempty"`
}

// DeleteResult is the outcome of a position-addressed deletion.
type DeleteResult struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Deleted *TransactionJSON `json:"deleted_transaction,omitempty"`
}

// ResetResult is the outcome of a full reset.
type ResetResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
