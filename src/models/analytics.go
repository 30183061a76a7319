// backend/src/models/analytics.go
package models

// FeeBreakdown is a count/total pair for a per-category or per-institution
// analytics breakdown.
type FeeBreakdown struct {
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// FeeAnalytics summarizes confirmed fees over a time range.
type FeeAnalytics struct {
	TotalFees     int                     `json:"total_fees"`
	TotalAmount   float64                 `json:"total_amount"`
	AverageFee    float64                 `json:"average_fee"`
	AvoidableFees []Fee                   `json:"avoidable_fees"`
	ByCategory    map[string]FeeBreakdown `json:"by_category"`
	ByInstitution map[string]FeeBreakdown `json:"by_institution"`
}

// Recommendation priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Recommendation is a prioritized, savings-estimated suggestion derived from
// fee analytics.
type Recommendation struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Action           string  `json:"action"`
	Priority         string  `json:"priority"`
	PotentialSavings float64 `json:"potential_savings,omitempty"` // annualized estimate
}
