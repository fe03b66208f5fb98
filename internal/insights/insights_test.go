package insights

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pesatrack/mpesa-csv/internal/models"
	"pesatrack/mpesa-csv/internal/parsererror"
)

var refNow = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.Local)

func tx(id string, day int, amount int64, counterpart, kind string) models.Transaction {
	ts := time.Date(2025, time.January, day, 10, 0, 0, 0, time.Local)
	return models.NewTransaction(id, ts, decimal.NewFromInt(amount), counterpart, kind)
}

func TestMostExpensive(t *testing.T) {
	transactions := []models.Transaction{
		tx("small", 3, 500, "JOHN", models.KindDeduction),
		tx("big", 10, 1200, "RENT", models.KindDeduction),
		tx("credit", 5, 5000, "JANE", models.KindCredit),
		models.NewTransaction("old", time.Date(2024, time.December, 20, 0, 0, 0, 0, time.Local),
			decimal.NewFromInt(2000), "OLD", models.KindDeduction),
	}

	got := MostExpensive(transactions, refNow)

	require.NotNil(t, got)
	assert.Equal(t, "big", got.ID)
}

func TestMostExpensiveTieFirstWins(t *testing.T) {
	transactions := []models.Transaction{
		tx("first", 3, 800, "A", models.KindDeduction),
		tx("second", 10, 800, "B", models.KindDeduction),
	}

	got := MostExpensive(transactions, refNow)

	require.NotNil(t, got)
	assert.Equal(t, "first", got.ID)
}

func TestMostExpensiveNoDeductions(t *testing.T) {
	transactions := []models.Transaction{
		tx("credit", 5, 5000, "JANE", models.KindCredit),
	}

	assert.Nil(t, MostExpensive(transactions, refNow))
	assert.Nil(t, MostExpensive(nil, refNow))
}

func TestMostFrequentCounterpart(t *testing.T) {
	transactions := []models.Transaction{
		tx("1", 2, 100, "JOHN", models.KindDeduction),
		tx("2", 4, 200, "JOHN", models.KindDeduction),
		tx("3", 6, 900, "JANE", models.KindDeduction),
		tx("4", 8, 50, "", models.KindDeduction),
		tx("5", 9, 400, "JOHN", models.KindCredit),
	}

	got := MostFrequentCounterpart(transactions, refNow)

	require.NotNil(t, got)
	assert.Equal(t, "JOHN", got.Name)
	assert.Equal(t, 2, got.Count)
	assert.True(t, decimal.NewFromInt(300).Equal(got.TotalAmount))
}

func TestMostFrequentCounterpartTieFirstToReachWins(t *testing.T) {
	transactions := []models.Transaction{
		tx("1", 2, 100, "JOHN", models.KindDeduction),
		tx("2", 3, 100, "JOHN", models.KindDeduction),
		tx("3", 4, 100, "JANE", models.KindDeduction),
		tx("4", 5, 100, "JANE", models.KindDeduction),
	}

	got := MostFrequentCounterpart(transactions, refNow)

	require.NotNil(t, got)
	assert.Equal(t, "JOHN", got.Name)
}

func TestMostFrequentCounterpartNoneQualifies(t *testing.T) {
	transactions := []models.Transaction{
		tx("1", 2, 100, "", models.KindDeduction),
		tx("2", 3, 100, "JANE", models.KindCredit),
	}

	assert.Nil(t, MostFrequentCounterpart(transactions, refNow))
}

func TestSavingsProgress(t *testing.T) {
	transactions := []models.Transaction{
		tx("c1", 3, 500, "JANE", models.KindCredit),
		tx("c2", 10, 250, "JOHN", models.KindCredit),
		tx("d1", 5, 900, "RENT", models.KindDeduction),
		models.NewTransaction("old", time.Date(2024, time.December, 5, 0, 0, 0, 0, time.Local),
			decimal.NewFromInt(5000), "OLD", models.KindCredit),
	}

	got, err := Savings(transactions, decimal.NewFromInt(3000), 30, refNow)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(750).Equal(got.TotalSavings))
	assert.True(t, decimal.NewFromFloat(0.25).Equal(got.Ratio))
	assert.Equal(t, "25.00%", got.ProgressLabel())
	assert.True(t, decimal.NewFromInt(100).Equal(got.DailyTarget))
	// 15 days into the month at 100 per day.
	assert.True(t, decimal.NewFromInt(1500).Equal(got.ExpectedSavingsByNow))
}

func TestSavingsRatioCappedAtOne(t *testing.T) {
	transactions := []models.Transaction{
		tx("c1", 3, 4000, "JANE", models.KindCredit),
	}

	got, err := Savings(transactions, decimal.NewFromInt(2000), 30, refNow)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1).Equal(got.Ratio))
	assert.Equal(t, "100.00%", got.ProgressLabel())
}

func TestSavingsZeroTarget(t *testing.T) {
	transactions := []models.Transaction{
		tx("c1", 3, 4000, "JANE", models.KindCredit),
	}

	got, err := Savings(transactions, decimal.Zero, 30, refNow)

	require.NoError(t, err)
	assert.True(t, decimal.Zero.Equal(got.Ratio))
	assert.True(t, decimal.Zero.Equal(got.DailyTarget))
	assert.True(t, decimal.NewFromInt(4000).Equal(got.TotalSavings))
}

func TestSavingsNegativeTarget(t *testing.T) {
	_, err := Savings(nil, decimal.NewFromInt(-100), 30, refNow)

	require.Error(t, err)
	var targetErr *parsererror.InvalidTargetError
	assert.ErrorAs(t, err, &targetErr)
}

func TestSavingsDefaultPeriod(t *testing.T) {
	got, err := Savings(nil, decimal.NewFromInt(3000), 0, refNow)

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(got.DailyTarget))
}
