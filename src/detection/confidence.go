// backend/src/detection/confidence.go
package detection

import (
	"math"
	"time"

	"github.com/username/finsight/backend/src/utils"
)

// Scoring model weights. Fixed and centralized so the model is auditable:
// changing detection behavior means changing a named constant here, not a
// magic number at a usage site.
const (
	weightRegularity      = 0.35
	weightAmountStability = 0.25
	weightLexicon         = 0.20
	weightOccurrence      = 0.15
	weightRecency         = 0.05

	// Amount coefficient of variation at or above this yields zero
	// stability credit.
	maxAmountCV = 0.15

	// occurrenceFactor saturates after this many occurrences beyond the
	// first (i.e., at 4 total).
	occurrenceSaturation = 3
)

// Score combines regularity, amount stability, lexicon strength, occurrence
// count, and recency into one [0,1] confidence, rounded to 2 decimals.
// Holding all else equal, one more on-cadence, on-amount occurrence never
// decreases the result.
func Score(s Series, freq FrequencyResult, cls Classification, now time.Time) float64 {
	amountStability := 1 - math.Min(1, coefficientOfVariation(s.Amounts)/maxAmountCV)
	occurrenceFactor := math.Min(1, float64(len(s.Transactions)-1)/occurrenceSaturation)
	recencyFactor := recency(s, freq, now)

	confidence := weightRegularity*freq.Regularity +
		weightAmountStability*amountStability +
		weightLexicon*cls.LexiconScore +
		weightOccurrence*occurrenceFactor +
		weightRecency*recencyFactor

	return utils.RoundFloat(clamp01(confidence), 2)
}

// recency is 1 while the most recent occurrence is within one expected
// period of now, then decays linearly to 0 over one additional period.
func recency(s Series, freq FrequencyResult, now time.Time) float64 {
	last := s.Transactions[len(s.Transactions)-1].Date
	age := float64(daysBetween(last, now))
	if age < 0 {
		return 1
	}
	period := periodDays(freq.Class, s)
	if age <= period {
		return 1
	}
	return clamp01(1 - (age-period)/period)
}
