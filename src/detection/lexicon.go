// backend/src/detection/lexicon.go
package detection

// LexiconEntry is one category in an ordered keyword lexicon.
type LexiconEntry struct {
	Category string
	Type     string
	Keywords []string
}

// Lexicon is an immutable, ordered keyword table injected into the
// classifier. Tests substitute fixture lexicons; nothing here is global
// mutable state.
type Lexicon struct {
	entries          []LexiconEntry
	fallbackCategory string
	fallbackType     string
}

// NewLexicon builds a lexicon from ordered entries and a fallback
// category/type for signatures no keyword matches. The entries are copied.
func NewLexicon(entries []LexiconEntry, fallbackCategory, fallbackType string) Lexicon {
	copied := make([]LexiconEntry, len(entries))
	copy(copied, entries)
	return Lexicon{
		entries:          copied,
		fallbackCategory: fallbackCategory,
		fallbackType:     fallbackType,
	}
}

// FeeLexicon is the production keyword table for the fee pipeline. Earlier
// entries win on a shared keyword hit.
func FeeLexicon() Lexicon {
	return NewLexicon([]LexiconEntry{
		{Category: "overdraft", Type: "banking", Keywords: []string{"overdraft", "od item"}},
		{Category: "nsf", Type: "banking", Keywords: []string{"nsf", "insufficient funds", "returned item"}},
		{Category: "atm", Type: "banking", Keywords: []string{"atm"}},
		{Category: "wire transfer", Type: "banking", Keywords: []string{"wire"}},
		{Category: "account maintenance", Type: "banking", Keywords: []string{"maintenance fee", "monthly service", "service charge"}},
		{Category: "advisory", Type: "investment", Keywords: []string{"advisory", "advisor fee"}},
		{Category: "management", Type: "investment", Keywords: []string{"management fee", "mgmt fee"}},
		{Category: "expense ratio", Type: "investment", Keywords: []string{"expense ratio", "fund expense"}},
		{Category: "annual fee", Type: "credit_card", Keywords: []string{"annual fee", "membership fee"}},
		{Category: "late payment", Type: "credit_card", Keywords: []string{"late fee", "late payment"}},
		{Category: "cash advance", Type: "credit_card", Keywords: []string{"cash advance"}},
	}, "other", "other")
}

// SubscriptionLexicon is the production keyword table for the subscription
// pipeline.
func SubscriptionLexicon() Lexicon {
	return NewLexicon([]LexiconEntry{
		{Category: "streaming", Type: "subscription", Keywords: []string{
			"netflix", "hulu", "disney", "hbo", "paramount", "peacock",
			"spotify", "youtube", "apple tv", "apple music", "audible", "streaming",
		}},
		{Category: "software", Type: "subscription", Keywords: []string{
			"adobe", "microsoft", "office 365", "dropbox", "icloud",
			"google one", "github", "zoom", "1password",
		}},
		{Category: "utilities", Type: "subscription", Keywords: []string{
			"internet", "wireless", "mobile", "verizon", "comcast", "xfinity", "t mobile",
		}},
		{Category: "fitness", Type: "subscription", Keywords: []string{
			"gym", "fitness", "peloton", "crossfit", "yoga", "pilates",
		}},
		{Category: "news", Type: "subscription", Keywords: []string{
			"times", "post", "journal", "news", "economist", "substack",
		}},
		{Category: "productivity", Type: "subscription", Keywords: []string{
			"notion", "evernote", "todoist", "slack", "canva",
		}},
		{Category: "gaming", Type: "subscription", Keywords: []string{
			"playstation", "xbox", "nintendo", "steam", "twitch",
		}},
		{Category: "shopping", Type: "subscription", Keywords: []string{
			"amazon prime", "prime membership", "costco", "walmart plus", "instacart",
		}},
		{Category: "financial", Type: "subscription", Keywords: []string{
			"quickbooks", "turbotax", "ynab", "credit karma",
		}},
	}, "miscellaneous", "subscription")
}
