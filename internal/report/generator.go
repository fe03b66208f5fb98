// Package report renders computation results in the formats the CLI
// exposes: human-readable text, JSON, and XML.
package report

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"

	"pesatrack/mpesa-csv/internal/logging"
	"pesatrack/mpesa-csv/internal/models"
)

// Generator renders reports in a requested output format.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger}
}

// Summary renders a full summary report in the given format ("text", "json"
// or "xml").
func (g *Generator) Summary(report *models.SummaryReport, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.marshalJSON(report)
	case "xml":
		return g.marshalXML(report)
	case "text", "":
		return renderSummaryText(report), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Insights renders the monthly insights in the given format.
func (g *Generator) Insights(ins *models.Insights, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.marshalJSON(ins)
	case "xml":
		return g.marshalXML(ins)
	case "text", "":
		return renderInsightsText(ins), nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) marshalJSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) marshalXML(v interface{}) ([]byte, error) {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal XML report")
		return nil, fmt.Errorf("failed to marshal XML report: %w", err)
	}
	return []byte(xml.Header + string(out)), nil
}

func renderSummaryText(report *models.SummaryReport) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "Summary generated at %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Balance: %s\n\n", report.Balance.StringFixed(2))

	fmt.Fprintf(&b, "Today (%s)\n", report.Today.WindowStart.Format("2006-01-02"))
	fmt.Fprintf(&b, "  income %s  expense %s\n\n",
		report.Today.Income.StringFixed(2), report.Today.Expense.StringFixed(2))

	b.WriteString("This week\n")
	writeBuckets(&b, report.Weekly)
	b.WriteString("\nThis month\n")
	writeBuckets(&b, report.Monthly)
	b.WriteString("\nThis year\n")
	writeBuckets(&b, report.Yearly)

	b.WriteString("\n")
	b.Write(renderInsightsText(&report.Insights))

	if report.Skipped.Total() > 0 {
		fmt.Fprintf(&b, "\nSkipped messages: %d (no amount %d, unclassified %d, bad date %d)\n",
			report.Skipped.Total(), report.Skipped.UnparseableAmount,
			report.Skipped.Unclassified, report.Skipped.MalformedDate)
	}

	return []byte(b.String())
}

func writeBuckets(b *strings.Builder, buckets []models.Bucket) {
	for _, bucket := range buckets {
		fmt.Fprintf(b, "  %-4s income %12s  expense %12s\n",
			bucket.Label, bucket.Income.StringFixed(2), bucket.Expense.StringFixed(2))
	}
}

func renderInsightsText(ins *models.Insights) []byte {
	var b strings.Builder

	b.WriteString("Monthly insights\n")
	if ins.MostExpensive != nil {
		fmt.Fprintf(&b, "  Most expensive: %s (%s)\n",
			counterpartOrUnknown(ins.MostExpensive.Counterpart),
			ins.MostExpensive.Amount.StringFixed(2))
	} else {
		b.WriteString("  Most expensive: n/a\n")
	}
	if ins.MostFrequentCounterpart != nil {
		fmt.Fprintf(&b, "  Most frequent counterpart: %s (%d transactions, total %s)\n",
			ins.MostFrequentCounterpart.Name,
			ins.MostFrequentCounterpart.Count,
			ins.MostFrequentCounterpart.TotalAmount.StringFixed(2))
	} else {
		b.WriteString("  Most frequent counterpart: n/a\n")
	}

	savings := ins.Savings
	fmt.Fprintf(&b, "  Savings: %s of %s (%s)\n",
		savings.TotalSavings.StringFixed(2), savings.Target.StringFixed(2), savings.ProgressLabel())
	fmt.Fprintf(&b, "  Daily target: %s, expected by now: %s\n",
		savings.DailyTarget.StringFixed(2), savings.ExpectedSavingsByNow.StringFixed(2))

	return []byte(b.String())
}

func counterpartOrUnknown(name string) string {
	if strings.TrimSpace(name) == "" {
		return "unknown"
	}
	return name
}
