// backend/src/detection/rank.go
package detection

import "sort"

// rankCandidates sorts by confidence descending, ties broken by evidence
// count descending, then most-recent occurrence descending. Detection always
// returns the full ranked list; truncation for display is the caller's
// concern.
func rankCandidates(candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.confidence != b.confidence {
			return a.confidence > b.confidence
		}
		if len(a.series.Transactions) != len(b.series.Transactions) {
			return len(a.series.Transactions) > len(b.series.Transactions)
		}
		aLast := a.series.Transactions[len(a.series.Transactions)-1].Date
		bLast := b.series.Transactions[len(b.series.Transactions)-1].Date
		return aLast.After(bLast)
	})
}
