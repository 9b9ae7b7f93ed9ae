// Package extract derives transaction fields from free-form text using
// keyword heuristics. It is a pure classifier: no side effects, no errors
// for malformed input — absent fields stay zero-valued.
package extract

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"kharcha/internal/core"
)

// Result is the structured guess for one piece of text. A zero field means
// the heuristic could not determine it.
type Result struct {
	Amount   core.Money
	Category string
	Type     core.TransactionType
}

// Complete reports whether all three fields were extracted. Only complete
// results may be turned into ledger records.
func (r Result) Complete() bool {
	return !r.Amount.IsZero() && r.Category != "" && r.Type.Validate() == nil
}

// amountRe matches an optional currency marker followed by a decimal number
// with at most two fractional digits. The first match in scan order wins.
var amountRe = regexp.MustCompile(`(?:₹|rs\.?|inr|usd|\$)?\s*([0-9]+(?:\.[0-9]{1,2})?)`)

var titleCaser = cases.Title(language.English)

// Extract guesses amount, type and category from text. Deterministic and
// side-effect free.
func Extract(text string) Result {
	var res Result

	lower := strings.ToLower(text)
	words := strings.Fields(lower)

	if m := amountRe.FindStringSubmatch(lower); m != nil {
		if cents, err := core.ParseDecimalToCents(m[1]); err == nil {
			res.Amount = core.Money{Cents: cents}
		}
	}

	switch {
	case containsAny(lower, expenseKeywords):
		res.Type = core.Expense
	case containsAny(lower, incomeKeywords):
		res.Type = core.Income
	case !res.Amount.IsZero():
		// No explicit keyword; infer from context words.
		if containsAny(lower, expenseContextWords) {
			res.Type = core.Expense
		} else if containsAny(lower, incomeContextWords) {
			res.Type = core.Income
		}
	}

	switch res.Type {
	case core.Expense:
		res.Category = expenseCategory(lower, words)
	case core.Income:
		res.Category = incomeCategory(lower, words)
	}

	return res
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func matchBucket(text string, buckets []bucket) string {
	for _, b := range buckets {
		if containsAny(text, b.keywords) {
			return b.name
		}
	}
	return ""
}

// expenseCategory resolves the expense bucket, then falls back to the text
// after the last preposition, then to the words following the first number.
func expenseCategory(lower string, words []string) string {
	if name := matchBucket(lower, expenseBuckets); name != "" {
		return name
	}
	if cat := afterLastPreposition(words); cat != "" {
		return titleCaser.String(cat)
	}
	if cat := wordsAfterAmount(words); cat != "" {
		return titleCaser.String(cat)
	}
	return defaultExpenseCategory
}

// incomeCategory resolves the income source bucket, then falls back to the
// text after the first "from".
func incomeCategory(lower string, words []string) string {
	if name := matchBucket(lower, incomeBuckets); name != "" {
		return name
	}
	for i, w := range words {
		if w == "from" && i+1 < len(words) {
			return titleCaser.String(strings.Join(words[i+1:], " "))
		}
	}
	return defaultIncomeCategory
}

// afterLastPreposition joins the tokens after the last on/for/to/at,
// dropping bare "the" and "a".
func afterLastPreposition(words []string) string {
	idx := -1
	for i, w := range words {
		switch w {
		case "on", "for", "to", "at":
			idx = i
		}
	}
	if idx < 0 || idx+1 >= len(words) {
		return ""
	}
	var kept []string
	for _, w := range words[idx+1:] {
		if w == "the" || w == "a" {
			continue
		}
		kept = append(kept, w)
	}
	return strings.TrimSpace(strings.Join(kept, " "))
}

// wordsAfterAmount collects up to three digit-free tokens that follow the
// first token containing a digit.
func wordsAfterAmount(words []string) string {
	var collected []string
	seenNumber := false
	for _, w := range words {
		if strings.ContainsAny(w, "0123456789") {
			seenNumber = true
		} else if seenNumber {
			collected = append(collected, w)
		}
	}
	if len(collected) > 3 {
		collected = collected[:3]
	}
	return strings.TrimSpace(strings.Join(collected, " "))
}
