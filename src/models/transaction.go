// backend/src/models/transaction.go
package models

import "time"

// Transaction is a single expense row as supplied by the expense store.
// It is an immutable snapshot for the duration of one detection run: the
// detector never writes back to the store.
type Transaction struct {
	ID            int64     `json:"id,omitempty"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"` // signed; fees and subscriptions are debits (negative)
	Date          time.Time `json:"date"`
	Category      string    `json:"category,omitempty"`
	PaymentMethod string    `json:"payment_method,omitempty"`
}

// TrackedRecord is an already-confirmed fee or subscription, read-only input
// for deduplication. Name is compared through signature normalization.
type TrackedRecord struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"` // "fee" or "subscription"
}

// Fee is a confirmed, persisted fee record.
type Fee struct {
	ID              int64     `json:"id,omitempty"`
	CategoryName    string    `json:"category_name"`
	CategoryType    string    `json:"category_type"` // e.g., "banking", "investment", "credit_card"
	InstitutionName string    `json:"institution_name,omitempty"`
	Description     string    `json:"description"`
	Amount          float64   `json:"amount"`
	Date            time.Time `json:"date"`
	Recurring       bool      `json:"recurring"`
}

// Subscription is a confirmed, persisted subscription record.
type Subscription struct {
	ID              int64     `json:"id,omitempty"`
	Name            string    `json:"name"`
	Category        string    `json:"category"` // e.g., "streaming", "software", "fitness"
	InstitutionName string    `json:"institution_name,omitempty"`
	Description     string    `json:"description,omitempty"`
	Amount          float64   `json:"amount"`
	Frequency       string    `json:"frequency"`
	Date            time.Time `json:"date"`
	Active          bool      `json:"active"`
}
