// backend/src/insights/analytics.go
package insights

import (
	"math"
	"time"

	"github.com/username/finsight/backend/src/models"
	"github.com/username/finsight/backend/src/utils"
)

// avoidableCategories is the fixed policy list of fee categories a user can
// typically prevent. Management and expense-ratio fees are structural, not
// avoidable.
var avoidableCategories = map[string]struct{}{
	"overdraft":    {},
	"atm":          {},
	"late payment": {},
	"nsf":          {},
}

// AggregateFees summarizes confirmed fees inside [from, to]: count, total,
// average, the avoidable subset, and per-category / per-institution
// breakdowns. Pure function; the input slice is never mutated.
func AggregateFees(fees []models.Fee, from, to time.Time) models.FeeAnalytics {
	analytics := models.FeeAnalytics{
		AvoidableFees: []models.Fee{},
		ByCategory:    make(map[string]models.FeeBreakdown),
		ByInstitution: make(map[string]models.FeeBreakdown),
	}

	var total float64
	for _, fee := range fees {
		if !inRange(fee.Date, from, to) {
			continue
		}
		amount := math.Abs(fee.Amount)

		analytics.TotalFees++
		total += amount

		category := analytics.ByCategory[fee.CategoryName]
		category.Count++
		category.Total = utils.RoundFloat(category.Total+amount, 2)
		analytics.ByCategory[fee.CategoryName] = category

		if fee.InstitutionName != "" {
			institution := analytics.ByInstitution[fee.InstitutionName]
			institution.Count++
			institution.Total = utils.RoundFloat(institution.Total+amount, 2)
			analytics.ByInstitution[fee.InstitutionName] = institution
		}

		if _, avoidable := avoidableCategories[fee.CategoryName]; avoidable {
			analytics.AvoidableFees = append(analytics.AvoidableFees, fee)
		}
	}

	analytics.TotalAmount = utils.RoundFloat(total, 2)
	if analytics.TotalFees > 0 {
		analytics.AverageFee = utils.RoundFloat(total/float64(analytics.TotalFees), 2)
	}
	return analytics
}

// IsAvoidableCategory reports whether a fee category is on the avoidable
// policy list.
func IsAvoidableCategory(categoryName string) bool {
	_, ok := avoidableCategories[categoryName]
	return ok
}

func inRange(date, from, to time.Time) bool {
	return !date.Before(from) && !date.After(to)
}
