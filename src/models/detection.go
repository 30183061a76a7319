// backend/src/models/detection.go
package models

import "time"

// FrequencyClass is the inferred calendar cadence of a recurring series.
type FrequencyClass string

const (
	FrequencyWeekly    FrequencyClass = "weekly"
	FrequencyBiweekly  FrequencyClass = "biweekly"
	FrequencyMonthly   FrequencyClass = "monthly"
	FrequencyQuarterly FrequencyClass = "quarterly"
	FrequencyYearly    FrequencyClass = "yearly"
	FrequencyIrregular FrequencyClass = "irregular"
)

// DetectedFee is an ephemeral fee suggestion produced by a detection run.
// It is never persisted here; it becomes a Fee only when the caller accepts it.
type DetectedFee struct {
	CategoryName    string    `json:"category_name"`
	CategoryType    string    `json:"category_type"`
	Amount          float64   `json:"amount"` // representative amount (median of the series)
	InstitutionName string    `json:"institution_name,omitempty"`
	Description     string    `json:"description"` // most recent raw description
	Date            time.Time `json:"date"`        // most recent occurrence
	Confidence      float64   `json:"confidence"`
	EvidenceCount   int       `json:"evidence_count"`
}

// DetectedSubscription is an ephemeral subscription suggestion produced by a
// detection run.
type DetectedSubscription struct {
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Amount          float64        `json:"amount"`
	InstitutionName string         `json:"institution_name,omitempty"`
	Description     string         `json:"description"`
	Date            time.Time      `json:"date"`
	Frequency       FrequencyClass `json:"frequency"`
	Confidence      float64        `json:"confidence"`
	EvidenceCount   int            `json:"evidence_count"`
}
