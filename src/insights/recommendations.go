// backend/src/insights/recommendations.go
package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/utils"
)

// Rule thresholds for recommendation generation. Centralized so the rule
// table is auditable and independently testable.
const (
	overdraftRecommendationMin  = 2
	nsfRecommendationMin        = 2
	atmRecommendationMin        = 3
	maintenanceRecommendMin     = 2
	managementFeeTotalThreshold = 200.0

	// Fraction of advisory/management fees typically recoverable through
	// renegotiation or a lower-cost fund.
	managementSavingsRate = 0.25
)

var priorityRank = map[string]int{
	models.PriorityHigh:   0,
	models.PriorityMedium: 1,
	models.PriorityLow:    2,
}

// RecommendFees turns aggregated fee analytics into prioritized,
// savings-estimated suggestions. The rule table is keyed by fee category;
// potential savings are annualized from the observed in-range rate. The
// function never mutates its inputs and returns an empty non-nil slice when
// no rule fires.
func RecommendFees(fees []models.Fee, analytics models.FeeAnalytics, from, to time.Time) []models.Recommendation {
	recommendations := []models.Recommendation{}
	rangeDays := daysInRange(from, to)

	if overdraft, ok := categoryStats(analytics, "overdraft", "nsf"); ok && overdraft.Count >= overdraftRecommendationMin {
		average := overdraft.Total / float64(overdraft.Count)
		recommendations = append(recommendations, models.Recommendation{
			Title: "Reduce overdraft charges",
			Description: fmt.Sprintf("%d overdraft or returned-payment fees (%.2f total) were charged in this period.",
				overdraft.Count, overdraft.Total),
			Action:           "Enable low-balance alerts or switch to an account without overdraft fees.",
			Priority:         models.PriorityHigh,
			PotentialSavings: annualize(average*float64(overdraft.Count), rangeDays),
		})
	}

	if atm, ok := categoryStats(analytics, "atm"); ok && atm.Count >= atmRecommendationMin {
		recommendations = append(recommendations, models.Recommendation{
			Title: "Avoid out-of-network ATM fees",
			Description: fmt.Sprintf("%d ATM fees (%.2f total) were charged in this period.",
				atm.Count, atm.Total),
			Action:           "Use in-network ATMs or a bank that reimburses ATM fees.",
			Priority:         models.PriorityMedium,
			PotentialSavings: annualize(atm.Total, rangeDays),
		})
	}

	if late, ok := categoryStats(analytics, "late payment"); ok && late.Count >= 1 {
		recommendations = append(recommendations, models.Recommendation{
			Title: "Stop late payment fees",
			Description: fmt.Sprintf("%d late payment fees (%.2f total) were charged in this period.",
				late.Count, late.Total),
			Action:           "Set up autopay for at least the minimum payment on every card.",
			Priority:         models.PriorityMedium,
			PotentialSavings: annualize(late.Total, rangeDays),
		})
	}

	if maintenance, ok := categoryStats(analytics, "account maintenance"); ok && maintenance.Count >= maintenanceRecommendMin {
		recommendations = append(recommendations, models.Recommendation{
			Title: "Switch to a no-fee account",
			Description: fmt.Sprintf("Recurring account maintenance fees (%.2f total) were charged in this period.",
				maintenance.Total),
			Action:           "Move to a checking account with no monthly maintenance fee or meet the waiver requirements.",
			Priority:         models.PriorityMedium,
			PotentialSavings: annualize(maintenance.Total, rangeDays),
		})
	}

	if management, ok := categoryStats(analytics, "management", "advisory", "expense ratio"); ok &&
		management.Total > managementFeeTotalThreshold {
		recommendations = append(recommendations, models.Recommendation{
			Title: "Renegotiate investment fees",
			Description: fmt.Sprintf("Advisory and management fees reached %.2f in this period.",
				management.Total),
			Action:           "Negotiate the advisory rate or move to lower expense-ratio funds.",
			Priority:         models.PriorityLow,
			PotentialSavings: utils.RoundFloat(annualize(management.Total, rangeDays)*managementSavingsRate, 2),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		a, b := recommendations[i], recommendations[j]
		if priorityRank[a.Priority] != priorityRank[b.Priority] {
			return priorityRank[a.Priority] < priorityRank[b.Priority]
		}
		return a.PotentialSavings > b.PotentialSavings
	})
	return recommendations
}

// categoryStats merges the breakdowns of one or more categories.
func categoryStats(analytics models.FeeAnalytics, categories ...string) (models.FeeBreakdown, bool) {
	var merged models.FeeBreakdown
	for _, category := range categories {
		if stats, found := analytics.ByCategory[category]; found {
			merged.Count += stats.Count
			merged.Total = utils.RoundFloat(merged.Total+stats.Total, 2)
		}
	}
	return merged, merged.Count > 0
}

// annualize scales an in-range total to a yearly estimate from the observed
// rate over the range.
func annualize(total float64, rangeDays float64) float64 {
	if rangeDays <= 0 {
		rangeDays = 365
	}
	return utils.RoundFloat(total/rangeDays*365, 2)
}

func daysInRange(from, to time.Time) float64 {
	days := to.Sub(from).Hours() / 24
	if days < 1 {
		return 1
	}
	return days
}
