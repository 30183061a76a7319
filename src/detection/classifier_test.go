package detection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_FeeLexicon(t *testing.T) {
	lexicon := FeeLexicon()

	cls := lexicon.Classify("overdraft fee")
	assert.Equal(t, "overdraft", cls.CategoryName)
	assert.Equal(t, "banking", cls.CategoryType)
	assert.Equal(t, lexiconMatchScore, cls.LexiconScore)

	cls = lexicon.Classify("monthly maintenance fee")
	assert.Equal(t, "account maintenance", cls.CategoryName)

	cls = lexicon.Classify("visa annual fee")
	assert.Equal(t, "annual fee", cls.CategoryName)
	assert.Equal(t, "credit_card", cls.CategoryType)

	cls = lexicon.Classify("quarterly advisory fee")
	assert.Equal(t, "advisory", cls.CategoryName)
	assert.Equal(t, "investment", cls.CategoryType)
}

func TestClassify_SubscriptionLexicon(t *testing.T) {
	lexicon := SubscriptionLexicon()

	assert.Equal(t, "streaming", lexicon.Classify("netflix com").CategoryName)
	assert.Equal(t, "fitness", lexicon.Classify("gym membership").CategoryName)
	assert.Equal(t, "software", lexicon.Classify("adobe creative cloud").CategoryName)
}

func TestClassify_NoMatchFallsBack(t *testing.T) {
	cls := FeeLexicon().Classify("mystery merchant")
	assert.Equal(t, "other", cls.CategoryName)
	assert.Equal(t, "other", cls.CategoryType)
	assert.Equal(t, lexiconMissScore, cls.LexiconScore)

	cls = SubscriptionLexicon().Classify("mystery merchant")
	assert.Equal(t, "miscellaneous", cls.CategoryName)
	assert.Equal(t, "subscription", cls.CategoryType)
}

func TestClassify_MatchesOnWordBoundaries(t *testing.T) {
	// "atm" must not fire inside "treatment".
	cls := FeeLexicon().Classify("treatment center")
	assert.Equal(t, "other", cls.CategoryName)
}

func TestClassify_FirstMatchWins(t *testing.T) {
	lexicon := NewLexicon([]LexiconEntry{
		{Category: "first", Type: "a", Keywords: []string{"shared"}},
		{Category: "second", Type: "b", Keywords: []string{"shared"}},
	}, "fallback", "fallback")

	assert.Equal(t, "first", lexicon.Classify("shared keyword").CategoryName)
}
