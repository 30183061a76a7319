package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/finsight/backend/src/models"
)

func fee(category, institution string, amount float64, date string) models.Fee {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Fee{
		CategoryName:    category,
		CategoryType:    "banking",
		InstitutionName: institution,
		Description:     category,
		Amount:          amount,
		Date:            parsed,
		Recurring:       true,
	}
}

func testRange() (time.Time, time.Time) {
	from, _ := time.Parse("2006-01-02", "2025-01-01")
	to, _ := time.Parse("2006-01-02", "2025-12-31")
	return from, to
}

func TestAggregateFees_OverdraftSummary(t *testing.T) {
	from, to := testRange()
	fees := []models.Fee{
		fee("overdraft", "Chase", 35, "2025-02-10"),
		fee("overdraft", "Chase", 35, "2025-04-14"),
		fee("overdraft", "Chase", 40, "2025-06-20"),
	}

	analytics := AggregateFees(fees, from, to)

	assert.Equal(t, 3, analytics.TotalFees)
	assert.Equal(t, 110.0, analytics.TotalAmount)
	assert.Equal(t, 36.67, analytics.AverageFee)
	assert.Len(t, analytics.AvoidableFees, 3)
	assert.Equal(t, models.FeeBreakdown{Count: 3, Total: 110.0}, analytics.ByCategory["overdraft"])
	assert.Equal(t, models.FeeBreakdown{Count: 3, Total: 110.0}, analytics.ByInstitution["Chase"])
}

func TestAggregateFees_FiltersByRange(t *testing.T) {
	from, to := testRange()
	fees := []models.Fee{
		fee("overdraft", "Chase", 35, "2024-12-31"), // before range
		fee("overdraft", "Chase", 35, "2025-02-10"),
		fee("overdraft", "Chase", 35, "2026-01-01"), // after range
	}

	analytics := AggregateFees(fees, from, to)
	assert.Equal(t, 1, analytics.TotalFees)
	assert.Equal(t, 35.0, analytics.TotalAmount)
}

func TestAggregateFees_AvoidablePolicy(t *testing.T) {
	from, to := testRange()
	fees := []models.Fee{
		fee("overdraft", "Chase", 35, "2025-02-10"),
		fee("atm", "Chase", 3, "2025-02-12"),
		fee("management", "Fidelity", 120, "2025-03-01"),
	}

	analytics := AggregateFees(fees, from, to)
	require.Len(t, analytics.AvoidableFees, 2)
	for _, avoidable := range analytics.AvoidableFees {
		assert.True(t, IsAvoidableCategory(avoidable.CategoryName))
	}
	assert.False(t, IsAvoidableCategory("management"))
}

func TestAggregateFees_NegativeAmountsUseAbsoluteValue(t *testing.T) {
	from, to := testRange()
	fees := []models.Fee{
		fee("overdraft", "Chase", -35, "2025-02-10"),
		fee("overdraft", "Chase", -35, "2025-03-10"),
	}

	analytics := AggregateFees(fees, from, to)
	assert.Equal(t, 70.0, analytics.TotalAmount)
	assert.Equal(t, 35.0, analytics.AverageFee)
}

func TestAggregateFees_Empty(t *testing.T) {
	from, to := testRange()
	analytics := AggregateFees([]models.Fee{}, from, to)

	assert.Equal(t, 0, analytics.TotalFees)
	assert.Equal(t, 0.0, analytics.TotalAmount)
	assert.Equal(t, 0.0, analytics.AverageFee)
	assert.NotNil(t, analytics.AvoidableFees)
	assert.Empty(t, analytics.AvoidableFees)
	assert.NotNil(t, analytics.ByCategory)
	assert.NotNil(t, analytics.ByInstitution)
}
