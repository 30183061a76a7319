// backend/src/detection/dedupe.go
package detection

import "github.com/username/finsight/backend/src/models"

// dedupe drops candidates the user already tracks: same signature-derived
// identity and an amount within the same tolerance used for series building,
// regardless of date overlap. Matching is exact on signature, not fuzzy, so
// a genuinely new charge from the same merchant at a different amount tier
// is not hidden.
func dedupe(candidates []candidate, known []models.TrackedRecord, tolerance float64) []candidate {
	if len(known) == 0 {
		return candidates
	}

	knownBySignature := make(map[string][]float64, len(known))
	for _, record := range known {
		sig := Normalize(record.Name)
		knownBySignature[sig] = append(knownBySignature[sig], record.Amount)
	}

	kept := candidates[:0]
	for _, c := range candidates {
		if !matchesKnown(c, knownBySignature, tolerance) {
			kept = append(kept, c)
		}
	}
	return kept
}

func matchesKnown(c candidate, knownBySignature map[string][]float64, tolerance float64) bool {
	for _, amount := range knownBySignature[c.series.Signature] {
		if amountCompatible(c.amount, abs(amount), tolerance) {
			return true
		}
	}
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
