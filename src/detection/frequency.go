// backend/src/detection/frequency.go
package detection

import (
	"math"
	"sort"

	"github.com/username/finsight/backend/src/models"
)

const (
	// Gap coefficient of variation above this marks a series irregular.
	maxGapCV = 0.35

	// A series with a single gap inside a band gets this regularity:
	// partial confidence, since one gap is not enough evidence for full
	// regularity.
	singleGapRegularity = 0.6
)

// frequencyBands maps a median gap against fixed bucket centers with
// tolerance in days. Order matters: the first band containing the median wins.
var frequencyBands = []struct {
	Class     models.FrequencyClass
	Center    float64
	Tolerance float64
}{
	{models.FrequencyWeekly, 7, 2},
	{models.FrequencyBiweekly, 14, 3},
	{models.FrequencyMonthly, 30, 5},
	{models.FrequencyQuarterly, 91, 10},
	{models.FrequencyYearly, 365, 15},
}

// FrequencyResult is the inferred cadence of a series plus a [0,1] measure of
// how consistent its date gaps are with that cadence.
type FrequencyResult struct {
	Class      models.FrequencyClass
	Regularity float64
}

// InferFrequency examines the calendar gaps of a series and assigns a
// frequency class and regularity score. The median gap is matched against the
// band table; if it falls in no band, or the gaps vary too much, the series
// is irregular with regularity 0.
func InferFrequency(s Series) FrequencyResult {
	gaps := make([]float64, len(s.DayGaps))
	for i, g := range s.DayGaps {
		gaps[i] = float64(g)
	}
	if len(gaps) == 0 {
		return FrequencyResult{Class: models.FrequencyIrregular}
	}

	class := bandFor(median(gaps))
	if class == models.FrequencyIrregular {
		return FrequencyResult{Class: models.FrequencyIrregular}
	}

	// One gap cannot support a coefficient of variation.
	if len(gaps) == 1 {
		return FrequencyResult{Class: class, Regularity: singleGapRegularity}
	}

	cv := coefficientOfVariation(gaps)
	if cv > maxGapCV {
		return FrequencyResult{Class: models.FrequencyIrregular}
	}
	return FrequencyResult{Class: class, Regularity: clamp01(1 - math.Min(1, cv/maxGapCV))}
}

// periodDays returns the expected number of days per occurrence for a class.
// For irregular series the observed median gap is used, so recency decay
// stays well-defined.
func periodDays(class models.FrequencyClass, s Series) float64 {
	for _, band := range frequencyBands {
		if band.Class == class {
			return band.Center
		}
	}
	gaps := make([]float64, len(s.DayGaps))
	for i, g := range s.DayGaps {
		gaps[i] = float64(g)
	}
	if len(gaps) == 0 {
		return 1
	}
	return math.Max(1, median(gaps))
}

func bandFor(medianGap float64) models.FrequencyClass {
	for _, band := range frequencyBands {
		if math.Abs(medianGap-band.Center) <= band.Tolerance {
			return band.Class
		}
	}
	return models.FrequencyIrregular
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stdDev(values []float64) float64 {
	m := mean(values)
	variance := 0.0
	for _, v := range values {
		variance += (v - m) * (v - m)
	}
	return math.Sqrt(variance / float64(len(values)))
}

// coefficientOfVariation is stddev/mean, or 0 for a zero mean.
func coefficientOfVariation(values []float64) float64 {
	m := mean(values)
	if m == 0 {
		return 0
	}
	return stdDev(values) / m
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
