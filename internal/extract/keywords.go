package extract

// Keyword tables used by the classifier. Matching is substring-based on the
// lowercased input, and bucket order is significant: the first bucket whose
// keyword list intersects the text wins, so reordering changes outcomes for
// texts matching several buckets.

var expenseKeywords = []string{
	"spent", "paid", "bought", "purchased", "ate", "gave", "cost", "costs",
	"bill", "bills", "expense", "expenses", "shopping", "shop", "buy",
}

var incomeKeywords = []string{
	"received", "got", "earned", "salary", "income", "profit", "bonus",
	"refund", "returned", "cashback", "won", "gift", "allowance",
}

// Context words used only when an amount was found but no type keyword
// matched.
var (
	expenseContextWords = []string{"food", "groceries", "restaurant", "fuel", "gas", "movie", "clothes"}
	incomeContextWords  = []string{"work", "job", "freelance", "project", "client"}
)

type bucket struct {
	name     string
	keywords []string
}

var expenseBuckets = []bucket{
	{"Food & Dining", []string{"food", "restaurant", "lunch", "dinner", "breakfast", "ate", "pizza", "coffee", "snack"}},
	{"Groceries", []string{"groceries", "grocery", "supermarket", "vegetables", "fruits", "milk", "bread"}},
	{"Transportation", []string{"fuel", "gas", "petrol", "diesel", "uber", "taxi", "bus", "train", "metro"}},
	{"Entertainment", []string{"movie", "movies", "cinema", "game", "games", "party", "concert", "show"}},
	{"Shopping", []string{"clothes", "clothing", "shoes", "dress", "shirt", "shopping", "mall"}},
	{"Bills & Utilities", []string{"bill", "bills", "electricity", "water", "internet", "phone", "rent"}},
	{"Health & Medical", []string{"doctor", "medicine", "hospital", "pharmacy", "medical", "health"}},
	{"Education", []string{"books", "course", "class", "tuition", "fees", "school", "college"}},
}

var incomeBuckets = []bucket{
	{"Salary", []string{"salary", "job", "work", "employment", "paycheck"}},
	{"Freelance", []string{"freelance", "freelancing", "client", "project", "contract"}},
	{"Business", []string{"business", "sales", "profit", "revenue"}},
	{"Investment", []string{"investment", "dividend", "interest", "stocks", "mutual"}},
	{"Gift", []string{"gift", "present", "birthday", "wedding"}},
	{"Refund", []string{"refund", "return", "cashback"}},
	{"Allowance", []string{"allowance", "pocket money", "parents"}},
}

// Defaults returned when no bucket or fallback produces a category.
const (
	defaultExpenseCategory = "Miscellaneous"
	defaultIncomeCategory  = "Other Income"
)
