package insights

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/finsight/backend/src/models"
)

func TestRecommendFees_OverdraftRule(t *testing.T) {
	from, to := testRange()
	fees := []models.Fee{
		fee("overdraft", "Chase", 35, "2025-02-10"),
		fee("overdraft", "Chase", 35, "2025-04-14"),
		fee("overdraft", "Chase", 40, "2025-06-20"),
	}
	analytics := AggregateFees(fees, from, to)

	recommendations := RecommendFees(fees, analytics, from, to)
	require.NotEmpty(t, recommendations)

	found := false
	for _, rec := range recommendations {
		if rec.Priority == models.PriorityHigh && strings.Contains(strings.ToLower(rec.Title), "overdraft") {
			found = true
			assert.Greater(t, rec.PotentialSavings, 0.0)
		}
	}
	assert.True(t, found, "expected a high-priority overdraft recommendation")
}

func TestRecommendFees_BelowThresholdsNoRecommendations(t *testing.T) {
	from, to := testRange()
	fees := []models.Fee{
		fee("overdraft", "Chase", 35, "2025-02-10"), // one is below the threshold of two
		fee("atm", "Chase", 3, "2025-02-12"),        // below the ATM threshold
	}
	analytics := AggregateFees(fees, from, to)

	recommendations := RecommendFees(fees, analytics, from, to)
	assert.NotNil(t, recommendations)
	assert.Empty(t, recommendations)
}

func TestRecommendFees_AtmRule(t *testing.T) {
	from, to := testRange()
	fees := []models.Fee{
		fee("atm", "Chase", 3, "2025-02-12"),
		fee("atm", "Chase", 3, "2025-03-12"),
		fee("atm", "Chase", 3.5, "2025-04-12"),
	}
	analytics := AggregateFees(fees, from, to)

	recommendations := RecommendFees(fees, analytics, from, to)
	require.Len(t, recommendations, 1)
	assert.Equal(t, models.PriorityMedium, recommendations[0].Priority)
	assert.Contains(t, strings.ToLower(recommendations[0].Title), "atm")
	assert.InDelta(t, 9.5, recommendations[0].PotentialSavings, 0.2)
}

func TestRecommendFees_ManagementRule(t *testing.T) {
	from, to := testRange()
	fees := []models.Fee{
		fee("management", "Fidelity", 150, "2025-03-01"),
		fee("advisory", "Fidelity", 150, "2025-09-01"),
	}
	analytics := AggregateFees(fees, from, to)

	recommendations := RecommendFees(fees, analytics, from, to)
	require.Len(t, recommendations, 1)
	assert.Equal(t, models.PriorityLow, recommendations[0].Priority)
	assert.Greater(t, recommendations[0].PotentialSavings, 0.0)
}

func TestRecommendFees_SortedByPriorityThenSavings(t *testing.T) {
	from, to := testRange()
	fees := []models.Fee{
		fee("overdraft", "Chase", 35, "2025-02-10"),
		fee("overdraft", "Chase", 35, "2025-04-14"),
		fee("atm", "Chase", 3, "2025-02-12"),
		fee("atm", "Chase", 3, "2025-03-12"),
		fee("atm", "Chase", 3, "2025-04-12"),
		fee("management", "Fidelity", 300, "2025-03-01"),
	}
	analytics := AggregateFees(fees, from, to)

	recommendations := RecommendFees(fees, analytics, from, to)
	require.Len(t, recommendations, 3)
	assert.Equal(t, models.PriorityHigh, recommendations[0].Priority)
	assert.Equal(t, models.PriorityMedium, recommendations[1].Priority)
	assert.Equal(t, models.PriorityLow, recommendations[2].Priority)
}

func TestRecommendFees_DoesNotMutateInputs(t *testing.T) {
	from, to := testRange()
	fees := []models.Fee{
		fee("overdraft", "Chase", 35, "2025-02-10"),
		fee("overdraft", "Chase", 35, "2025-04-14"),
	}
	analytics := AggregateFees(fees, from, to)
	feesBefore := make([]models.Fee, len(fees))
	copy(feesBefore, fees)
	countBefore := analytics.TotalFees

	RecommendFees(fees, analytics, from, to)

	assert.Equal(t, feesBefore, fees)
	assert.Equal(t, countBefore, analytics.TotalFees)
}
