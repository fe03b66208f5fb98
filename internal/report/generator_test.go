package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pesatrack/mpesa-csv/internal/logging"
	"pesatrack/mpesa-csv/internal/models"
)

func sampleReport() *models.SummaryReport {
	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.Local)
	tx := models.NewTransaction("m1", now, decimal.NewFromInt(2500), "JOHN DOE", models.KindDeduction)

	return &models.SummaryReport{
		GeneratedAt: now,
		Balance:     decimal.NewFromFloat(8200.00),
		Today:       models.Bucket{Label: "Today", WindowStart: now, WindowEnd: now},
		Weekly:      []models.Bucket{{Label: "Su"}, {Label: "Mo"}},
		Monthly:     []models.Bucket{{Label: "W1"}},
		Yearly:      []models.Bucket{{Label: "Jan"}},
		Insights: models.Insights{
			MostExpensive: &tx,
			MostFrequentCounterpart: &models.CounterpartStat{
				Name: "JOHN DOE", Count: 2, TotalAmount: decimal.NewFromInt(300),
			},
			Savings: models.SavingsProgress{
				Target:       decimal.NewFromInt(3000),
				TotalSavings: decimal.NewFromInt(750),
				Ratio:        decimal.NewFromFloat(0.25),
				DailyTarget:  decimal.NewFromInt(100),
			},
		},
		Skipped: models.SkipCounts{Unclassified: 1},
	}
}

func TestSummaryJSON(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})

	data, err := g.Summary(sampleReport(), "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "balance")
	assert.Contains(t, decoded, "weekly")
	assert.Contains(t, decoded, "insights")
	assert.Equal(t, "8200", decoded["balance"])
}

func TestSummaryXML(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})

	data, err := g.Summary(sampleReport(), "xml")
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<weekly>")
	assert.Contains(t, out, "<bucket")
}

func TestSummaryText(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})

	data, err := g.Summary(sampleReport(), "text")
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Balance: 8200.00")
	assert.Contains(t, out, "This week")
	assert.Contains(t, out, "Most expensive: JOHN DOE (2500.00)")
	assert.Contains(t, out, "25.00%")
	assert.Contains(t, out, "Skipped messages: 1")
}

func TestSummaryDefaultFormatIsText(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})

	data, err := g.Summary(sampleReport(), "")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Balance:")
}

func TestSummaryUnsupportedFormat(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})

	_, err := g.Summary(sampleReport(), "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestInsightsTextWithoutData(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})

	data, err := g.Insights(&models.Insights{}, "text")
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "Most expensive: n/a")
	assert.Contains(t, out, "Most frequent counterpart: n/a")
	assert.Contains(t, out, "0.00%")
}

func TestInsightsJSON(t *testing.T) {
	g := NewGenerator(&logging.MockLogger{})

	report := sampleReport()
	data, err := g.Insights(&report.Insights, "json")
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "most_expensive")
	assert.Contains(t, decoded, "savings")
}
