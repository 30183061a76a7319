// backend/src/detection/detector.go
package detection

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/utils"
)

// ErrNilTransactions is returned when the caller passes a nil transaction
// slice where an empty one was expected. Data-quality problems inside the
// slice are absorbed, never raised.
var ErrNilTransactions = errors.New("detection: transactions slice must not be nil")

// Relative amount tolerance for the fee pipeline. Fees such as overdraft
// fees may vary slightly between occurrences; subscription amounts are
// expected to be exact.
const FeeAmountTolerance = 0.15

const defaultWorkers = 4

// Config tunes one pipeline instance. The fee and subscription pipelines
// share series building and differ in tolerance, lexicon, and irregular
// handling.
type Config struct {
	AmountTolerance float64
	Lexicon         Lexicon
	// DropIrregular removes series with no inferable cadence. On for
	// subscriptions (a subscription has a billing cadence by definition),
	// off for fees.
	DropIrregular bool
	// Workers bounds per-series fan-out. Values below 1 fall back to the
	// default.
	Workers int
	// Now supplies the reference time for recency scoring; tests inject a
	// fixed clock. Nil means time.Now.
	Now func() time.Time
}

// FeeConfig is the production configuration of the fee pipeline.
func FeeConfig() Config {
	return Config{AmountTolerance: FeeAmountTolerance, Lexicon: FeeLexicon()}
}

// SubscriptionConfig is the production configuration of the subscription
// pipeline.
func SubscriptionConfig() Config {
	return Config{Lexicon: SubscriptionLexicon(), DropIrregular: true}
}

// candidate carries a series through classification, scoring, dedup and
// ranking before it is shaped into a DetectedFee or DetectedSubscription.
type candidate struct {
	series     Series
	frequency  FrequencyResult
	class      Classification
	amount     float64 // median of series amounts
	confidence float64
}

// DetectFees discovers recurring fee patterns in a transaction snapshot and
// returns ranked suggestions, excluding anything already present in
// knownFees. The result is never nil for valid input.
func DetectFees(transactions []models.Transaction, knownFees []models.TrackedRecord) ([]models.DetectedFee, error) {
	return DetectFeesWithConfig(FeeConfig(), transactions, knownFees)
}

// DetectFeesWithConfig runs the fee pipeline with an explicit configuration.
func DetectFeesWithConfig(cfg Config, transactions []models.Transaction, knownFees []models.TrackedRecord) ([]models.DetectedFee, error) {
	candidates, err := run(cfg, transactions, knownFees)
	if err != nil {
		return nil, err
	}
	out := make([]models.DetectedFee, 0, len(candidates))
	for _, c := range candidates {
		last := c.series.Transactions[len(c.series.Transactions)-1]
		out = append(out, models.DetectedFee{
			CategoryName:    c.class.CategoryName,
			CategoryType:    c.class.CategoryType,
			Amount:          utils.RoundFloat(c.amount, 2),
			InstitutionName: institutionFromSignature(c.series.Signature),
			Description:     last.Description,
			Date:            last.Date,
			Confidence:      c.confidence,
			EvidenceCount:   len(c.series.Transactions),
		})
	}
	return out, nil
}

// DetectSubscriptions discovers recurring subscription patterns in a
// transaction snapshot and returns ranked suggestions, excluding anything
// already present in knownSubscriptions.
func DetectSubscriptions(transactions []models.Transaction, knownSubscriptions []models.TrackedRecord) ([]models.DetectedSubscription, error) {
	return DetectSubscriptionsWithConfig(SubscriptionConfig(), transactions, knownSubscriptions)
}

// DetectSubscriptionsWithConfig runs the subscription pipeline with an
// explicit configuration.
func DetectSubscriptionsWithConfig(cfg Config, transactions []models.Transaction, knownSubscriptions []models.TrackedRecord) ([]models.DetectedSubscription, error) {
	candidates, err := run(cfg, transactions, knownSubscriptions)
	if err != nil {
		return nil, err
	}
	out := make([]models.DetectedSubscription, 0, len(candidates))
	for _, c := range candidates {
		last := c.series.Transactions[len(c.series.Transactions)-1]
		out = append(out, models.DetectedSubscription{
			Name:            c.class.CategoryName,
			Category:        c.class.CategoryName,
			Amount:          utils.RoundFloat(c.amount, 2),
			InstitutionName: institutionFromSignature(c.series.Signature),
			Description:     last.Description,
			Date:            last.Date,
			Frequency:       c.frequency.Class,
			Confidence:      c.confidence,
			EvidenceCount:   len(c.series.Transactions),
		})
	}
	return out, nil
}

// run executes steps 2-7 of the pipeline. Series are disjoint once built, so
// steps 3-5 fan out across a bounded worker pool with results addressed by
// index; no locking is needed. Dedup and ranking happen after the ordered
// merge.
func run(cfg Config, transactions []models.Transaction, known []models.TrackedRecord) ([]candidate, error) {
	if transactions == nil {
		return nil, ErrNilTransactions
	}

	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = defaultWorkers
	}

	series := BuildSeries(transactions, cfg.AmountTolerance)

	results := make([]candidate, len(series))
	keep := make([]bool, len(series))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := range series {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			s := series[i]
			freq := InferFrequency(s)
			if cfg.DropIrregular && freq.Class == models.FrequencyIrregular {
				return
			}
			cls := cfg.Lexicon.Classify(s.Signature)
			results[i] = candidate{
				series:     s,
				frequency:  freq,
				class:      cls,
				amount:     median(s.Amounts),
				confidence: Score(s, freq, cls, now()),
			}
			keep[i] = true
		}(i)
	}
	wg.Wait()

	candidates := make([]candidate, 0, len(series))
	for i := range results {
		if keep[i] {
			candidates = append(candidates, results[i])
		}
	}

	candidates = dedupe(candidates, known, cfg.AmountTolerance)
	rankCandidates(candidates)
	return candidates, nil
}

// genericLeadingTokens are signature tokens that describe the charge rather
// than the merchant; a signature starting with one of these yields no
// institution name.
var genericLeadingTokens = map[string]struct{}{
	"overdraft": {}, "atm": {}, "nsf": {}, "wire": {}, "monthly": {},
	"annual": {}, "late": {}, "service": {}, "maintenance": {}, "cash": {},
	"returned": {}, "insufficient": {}, "account": {}, "fee": {},
}

// institutionFromSignature extracts a best-effort institution name: the
// leading signature token, title-cased, unless it is a generic charge word.
func institutionFromSignature(signature string) string {
	if signature == UnknownSignature {
		return ""
	}
	first := strings.Fields(signature)[0]
	if _, generic := genericLeadingTokens[first]; generic {
		return ""
	}
	return strings.ToUpper(first[:1]) + first[1:]
}
