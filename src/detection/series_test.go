package detection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/finsight/backend/src/models"
)

func tx(description string, amount float64, date string) models.Transaction {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return models.Transaction{Description: description, Amount: amount, Date: parsed}
}

func TestBuildSeries_GroupsBySignature(t *testing.T) {
	transactions := []models.Transaction{
		tx("NETFLIX.COM", -9.99, "2025-01-05"),
		tx("SPOTIFY", -11.99, "2025-01-07"),
		tx("NETFLIX.COM", -9.99, "2025-02-04"),
		tx("SPOTIFY", -11.99, "2025-02-07"),
	}

	series := BuildSeries(transactions, 0)
	require.Len(t, series, 2)
	assert.Equal(t, "netflix com", series[0].Signature)
	assert.Equal(t, "spotify", series[1].Signature)
	assert.Len(t, series[0].Transactions, 2)
	assert.Equal(t, []int{30}, series[0].DayGaps)
	assert.Equal(t, []float64{9.99, 9.99}, series[0].Amounts)
}

func TestBuildSeries_DiscardsSingletons(t *testing.T) {
	transactions := []models.Transaction{
		tx("SPOTIFY", -11.99, "2025-01-07"),
	}
	assert.Empty(t, BuildSeries(transactions, 0))
}

func TestBuildSeries_SplitsIncompatibleAmounts(t *testing.T) {
	// Exact mode: 9.99 and 10.99 are different subscriptions tiers, so the
	// group splits into singletons and is discarded.
	transactions := []models.Transaction{
		tx("NETFLIX.COM", -9.99, "2025-01-05"),
		tx("NETFLIX.COM", -10.99, "2025-02-04"),
	}
	assert.Empty(t, BuildSeries(transactions, 0))
}

func TestBuildSeries_ToleranceClustersNearbyAmounts(t *testing.T) {
	// Fee mode: 35 and 38 are within 15% of the larger amount.
	transactions := []models.Transaction{
		tx("OVERDRAFT FEE", -35.00, "2025-01-10"),
		tx("OVERDRAFT FEE", -38.00, "2025-02-09"),
		tx("OVERDRAFT FEE", -35.00, "2025-03-11"),
	}

	series := BuildSeries(transactions, FeeAmountTolerance)
	require.Len(t, series, 1)
	assert.Len(t, series[0].Transactions, 3)
}

func TestBuildSeries_ToleranceStillSplitsDistantAmounts(t *testing.T) {
	transactions := []models.Transaction{
		tx("OVERDRAFT FEE", -35.00, "2025-01-10"),
		tx("OVERDRAFT FEE", -45.00, "2025-02-09"),
	}
	// 10.00 apart is outside 15% of 45.00.
	assert.Empty(t, BuildSeries(transactions, FeeAmountTolerance))
}

func TestBuildSeries_SkipsMalformedTransactions(t *testing.T) {
	transactions := []models.Transaction{
		tx("NETFLIX.COM", -9.99, "2025-01-05"),
		tx("NETFLIX.COM", -9.99, "2025-02-04"),
		{Description: "NETFLIX.COM", Amount: -9.99},      // no date
		tx("NETFLIX.COM", 0, "2025-03-06"),               // no amount
	}

	series := BuildSeries(transactions, 0)
	require.Len(t, series, 1)
	assert.Len(t, series[0].Transactions, 2)
}

func TestBuildSeries_OrderIndependent(t *testing.T) {
	transactions := []models.Transaction{
		tx("NETFLIX.COM", -9.99, "2025-01-05"),
		tx("SPOTIFY", -11.99, "2025-01-07"),
		tx("NETFLIX.COM", -9.99, "2025-02-04"),
		tx("SPOTIFY", -11.99, "2025-02-07"),
	}
	reversed := []models.Transaction{transactions[3], transactions[2], transactions[1], transactions[0]}

	assert.Equal(t, BuildSeries(transactions, 0), BuildSeries(reversed, 0))
}
