package extract

import (
	"testing"

	"kharcha/internal/core"
)

func TestExtractKnownPhrases(t *testing.T) {
	cases := []struct {
		text     string
		cents    int64
		category string
		typ      core.TransactionType
	}{
		{"I spent 150 on groceries", 15000, "Groceries", core.Expense},
		{"Received 5000 salary from company", 500000, "Salary", core.Income},
		{"paid rs. 99.50 for milk", 9950, "Groceries", core.Expense},
		{"₹250 movie", 25000, "Entertainment", core.Expense},
		{"250 freelance project", 25000, "Freelance", core.Income},
		{"bought shoes for 1200", 120000, "Shopping", core.Expense},
		{"got a bonus of 2000", 200000, "Other Income", core.Income}, // "bonus" keyword, but no source bucket or "from"
	}
	for _, tc := range cases {
		res := Extract(tc.text)
		if res.Amount.Cents != tc.cents {
			t.Fatalf("%q: amount = %d cents, want %d", tc.text, res.Amount.Cents, tc.cents)
		}
		if res.Type != tc.typ {
			t.Fatalf("%q: type = %q, want %q", tc.text, res.Type, tc.typ)
		}
		if res.Category != tc.category {
			t.Fatalf("%q: category = %q, want %q", tc.text, res.Category, tc.category)
		}
		if !res.Complete() {
			t.Fatalf("%q: expected a complete result", tc.text)
		}
	}
}

func TestExtractExpenseKeywordBeatsIncomeKeyword(t *testing.T) {
	// Expense keywords are checked first, so a text naming both sides
	// classifies as an expense.
	res := Extract("spent my salary bonus 300")
	if res.Type != core.Expense {
		t.Fatalf("type = %q, want Expense", res.Type)
	}
}

func TestExtractSubstringFalseTrigger(t *testing.T) {
	// "prepaid" contains "paid"; matching is substring-based on purpose.
	res := Extract("recharged prepaid 199")
	if res.Type != core.Expense {
		t.Fatalf("type = %q, want Expense from embedded keyword", res.Type)
	}
}

func TestExtractFirstAmountWins(t *testing.T) {
	res := Extract("spent 100 and then 200 more")
	if res.Amount.Cents != 10000 {
		t.Fatalf("amount = %d cents, want first match 10000", res.Amount.Cents)
	}
}

func TestExtractCategoryFallbacks(t *testing.T) {
	cases := []struct {
		text     string
		category string
	}{
		// Last preposition wins; bare "the"/"a" are stripped.
		{"paid 100 for the plumber", "Plumber"},
		{"spent 80 at the corner bakery stand", "Corner Bakery Stand"},
		// No preposition: up to three words after the first number.
		{"spent 100 plumber visit", "Plumber Visit"},
		{"spent 100 one two three four", "One Two Three"},
		// Nothing usable at all.
		{"spent 100", "Miscellaneous"},
	}
	for _, tc := range cases {
		res := Extract(tc.text)
		if res.Type != core.Expense {
			t.Fatalf("%q: type = %q, want Expense", tc.text, res.Type)
		}
		if res.Category != tc.category {
			t.Fatalf("%q: category = %q, want %q", tc.text, res.Category, tc.category)
		}
	}
}

func TestExtractIncomeSourceFallbacks(t *testing.T) {
	res := Extract("got 200 from uncle joe")
	if res.Type != core.Income || res.Category != "Uncle Joe" {
		t.Fatalf("got type=%q category=%q, want Income / Uncle Joe", res.Type, res.Category)
	}

	res = Extract("received 500")
	if res.Type != core.Income || res.Category != "Other Income" {
		t.Fatalf("got type=%q category=%q, want Income / Other Income", res.Type, res.Category)
	}
}

func TestExtractContextFallbackNeedsAmount(t *testing.T) {
	// Context words only classify when an amount was found.
	res := Extract("100 for fuel")
	if res.Type != core.Expense || res.Category != "Transportation" {
		t.Fatalf("got type=%q category=%q, want Expense / Transportation", res.Type, res.Category)
	}

	res = Extract("thinking about fuel prices")
	if res.Type != "" {
		t.Fatalf("type = %q, want absent without an amount", res.Type)
	}
}

func TestExtractIncomplete(t *testing.T) {
	cases := []string{
		"hello there",
		"what a day",
		"12345", // amount but no type
	}
	for _, text := range cases {
		res := Extract(text)
		if res.Complete() {
			t.Fatalf("%q: expected incomplete result, got %+v", text, res)
		}
	}
}

func TestExtractIsDeterministic(t *testing.T) {
	const text = "I spent 150 on groceries"
	first := Extract(text)
	for i := 0; i < 5; i++ {
		if got := Extract(text); got != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}
