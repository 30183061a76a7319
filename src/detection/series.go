// backend/src/detection/series.go
package detection

import (
	"math"
	"sort"
	"time"

	"github.com/username/finsight/backend/src/models"
)

// Amounts within this absolute delta are treated as identical. Transaction
// amounts are currency values, so anything under half a cent is float noise.
const amountEqualityEpsilon = 0.005

// Series is a group of transactions sharing a signature and a compatible
// amount, candidate for being recurring. Built and discarded within a single
// detection run. A series always has at least two members.
type Series struct {
	Signature    string
	Transactions []models.Transaction // ordered by date
	Amounts      []float64            // absolute amounts, same order
	DayGaps      []int                // consecutive day differences
}

// BuildSeries groups transactions into candidate recurring series: exact
// signature match first, then amount clustering within the given relative
// tolerance (0 means exact amounts only). Transactions with a missing date or
// amount are skipped. Groups of size 1 are discarded. No cross-signature
// fuzzy merging is attempted. Output order is deterministic regardless of
// input order.
func BuildSeries(transactions []models.Transaction, amountTolerance float64) []Series {
	bySignature := make(map[string][]models.Transaction)
	for _, tx := range transactions {
		if tx.Date.IsZero() || tx.Amount == 0 || math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
			continue
		}
		sig := Normalize(tx.Description)
		bySignature[sig] = append(bySignature[sig], tx)
	}

	var series []Series
	for sig, group := range bySignature {
		for _, cluster := range clusterByAmount(group, amountTolerance) {
			if len(cluster) < 2 {
				continue
			}
			series = append(series, newSeries(sig, cluster))
		}
	}

	sort.Slice(series, func(i, j int) bool {
		if series[i].Signature != series[j].Signature {
			return series[i].Signature < series[j].Signature
		}
		return series[i].Amounts[0] < series[j].Amounts[0]
	})
	return series
}

// clusterByAmount splits a signature group into amount-compatible clusters.
// Transactions are sorted by absolute amount and greedily clustered while
// each member stays compatible with the largest amount seen in the cluster.
func clusterByAmount(group []models.Transaction, tolerance float64) [][]models.Transaction {
	sorted := make([]models.Transaction, len(group))
	copy(sorted, group)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := math.Abs(sorted[i].Amount), math.Abs(sorted[j].Amount)
		if a != b {
			return a < b
		}
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var clusters [][]models.Transaction
	var current []models.Transaction
	var currentMax float64

	for _, tx := range sorted {
		amount := math.Abs(tx.Amount)
		if len(current) == 0 || !amountCompatible(amount, currentMax, tolerance) {
			if len(current) > 0 {
				clusters = append(clusters, current)
			}
			current = []models.Transaction{tx}
			currentMax = amount
			continue
		}
		current = append(current, tx)
		currentMax = amount // sorted ascending, so this is the cluster max
	}
	if len(current) > 0 {
		clusters = append(clusters, current)
	}
	return clusters
}

// amountCompatible reports whether two absolute amounts belong to the same
// series: identical, or within the relative tolerance of the larger amount.
func amountCompatible(a, b, tolerance float64) bool {
	diff := math.Abs(a - b)
	if diff < amountEqualityEpsilon {
		return true
	}
	if tolerance <= 0 {
		return false
	}
	return diff <= tolerance*math.Max(a, b)
}

func newSeries(signature string, cluster []models.Transaction) Series {
	txs := make([]models.Transaction, len(cluster))
	copy(txs, cluster)
	sort.Slice(txs, func(i, j int) bool { return txs[i].Date.Before(txs[j].Date) })

	amounts := make([]float64, len(txs))
	for i, tx := range txs {
		amounts[i] = math.Abs(tx.Amount)
	}

	gaps := make([]int, 0, len(txs)-1)
	for i := 1; i < len(txs); i++ {
		gaps = append(gaps, daysBetween(txs[i-1].Date, txs[i].Date))
	}

	return Series{
		Signature:    signature,
		Transactions: txs,
		Amounts:      amounts,
		DayGaps:      gaps,
	}
}

// daysBetween returns the calendar-day difference between two dates,
// ignoring time-of-day and timezone.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
