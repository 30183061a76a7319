// backend/src/detection/classifier.go
package detection

import "strings"

const (
	lexiconMatchScore = 1.0

	// Unmatched recurring charges are still useful signal; they fall back
	// to the lexicon's other/miscellaneous category at reduced confidence
	// instead of being dropped.
	lexiconMissScore = 0.3
)

// Classification maps a series to a category via the keyword lexicon.
type Classification struct {
	CategoryName string
	CategoryType string
	LexiconScore float64
}

// Classify matches a signature against the ordered lexicon. The first entry
// with a matching keyword wins. Keywords match on word boundaries, so "atm"
// does not fire inside "treatment".
func (l Lexicon) Classify(signature string) Classification {
	padded := " " + signature + " "
	for _, entry := range l.entries {
		for _, keyword := range entry.Keywords {
			if strings.Contains(padded, " "+keyword+" ") {
				return Classification{
					CategoryName: entry.Category,
					CategoryType: entry.Type,
					LexiconScore: lexiconMatchScore,
				}
			}
		}
	}
	return Classification{
		CategoryName: l.fallbackCategory,
		CategoryType: l.fallbackType,
		LexiconScore: lexiconMissScore,
	}
}
