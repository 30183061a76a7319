package validation

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/username/finsight/backend/src/models"
)

func TestValidateTransaction_Valid(t *testing.T) {
	tx := models.Transaction{
		ID:          1,
		Description: "NETFLIX.COM",
		Amount:      -9.99,
		Date:        time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	assert.NoError(t, ValidateTransaction(tx))
}

func TestValidateTransaction_MissingDate(t *testing.T) {
	tx := models.Transaction{ID: 2, Description: "NETFLIX.COM", Amount: -9.99}
	err := ValidateTransaction(tx)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestValidateTransaction_MissingAmount(t *testing.T) {
	tx := models.Transaction{ID: 3, Description: "NETFLIX.COM", Date: time.Now()}
	assert.ErrorIs(t, ValidateTransaction(tx), ErrValidationFailed)
}

func TestValidateTransaction_UnparseableAmount(t *testing.T) {
	tx := models.Transaction{ID: 4, Description: "NETFLIX.COM", Amount: math.NaN(), Date: time.Now()}
	assert.ErrorIs(t, ValidateTransaction(tx), ErrValidationFailed)
}

func TestValidateTransaction_DescriptionTooLong(t *testing.T) {
	tx := models.Transaction{
		ID:          5,
		Description: strings.Repeat("x", MaxDescriptionLength+1),
		Amount:      -9.99,
		Date:        time.Now(),
	}
	assert.ErrorIs(t, ValidateTransaction(tx), ErrValidationFailed)
}

func TestValidateDateRange(t *testing.T) {
	assert.NoError(t, ValidateDateRange("2025-01-01", "2025-12-31"))
	assert.ErrorIs(t, ValidateDateRange("", "2025-12-31"), ErrValidationFailed)
	assert.ErrorIs(t, ValidateDateRange("2025-01-01", "  "), ErrValidationFailed)
}

func TestSanitizeDescription_StripsHTML(t *testing.T) {
	assert.Equal(t, "NETFLIX.COM", SanitizeDescription("NETFLIX.COM"))
	assert.Equal(t, "GYM MEMBERSHIP", SanitizeDescription(`<b>GYM MEMBERSHIP</b>`))
	assert.NotContains(t, SanitizeDescription(`<script>alert(1)</script>OVERDRAFT FEE`), "<script>")
}
