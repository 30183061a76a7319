// backend/src/validation/transaction_validator.go
package validation

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/username/finsight/backend/src/models"
)

// ErrValidationFailed is the sentinel all validation errors wrap.
var ErrValidationFailed = fmt.Errorf("validation failed")

const MaxDescriptionLength = 1024

// ValidateTransaction checks the explicit schema at the ingestion boundary,
// before a record reaches the detection pipeline. Records that fail are
// quarantined by the caller, never passed on: a missing date or amount makes
// a transaction unusable for series building.
func ValidateTransaction(tx models.Transaction) error {
	if tx.Date.IsZero() {
		return fmt.Errorf("%w: transaction %d has no date", ErrValidationFailed, tx.ID)
	}
	if tx.Amount == 0 {
		return fmt.Errorf("%w: transaction %d has no amount", ErrValidationFailed, tx.ID)
	}
	if math.IsNaN(tx.Amount) || math.IsInf(tx.Amount, 0) {
		return fmt.Errorf("%w: transaction %d has an unparseable amount", ErrValidationFailed, tx.ID)
	}
	if utf8.RuneCountInString(tx.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: transaction %d description exceeds %d characters", ErrValidationFailed, tx.ID, MaxDescriptionLength)
	}
	return nil
}

// ValidateDateRange checks an analytics time range.
func ValidateDateRange(startDate, endDate string) error {
	if strings.TrimSpace(startDate) == "" || strings.TrimSpace(endDate) == "" {
		return fmt.Errorf("%w: start_date and end_date are required", ErrValidationFailed)
	}
	return nil
}
