// Package summary contains the command for producing the aggregate report.
package summary

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pesatrack/mpesa-csv/cmd/root"
	"pesatrack/mpesa-csv/internal/common"
	"pesatrack/mpesa-csv/internal/report"
	"pesatrack/mpesa-csv/pkg/ledger"
)

// Cmd is the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Compute balance, calendar aggregates and insights from a message snapshot",
	Long: `Summary runs the full computation pass over a message snapshot and renders
the balance, today's totals, the weekly, monthly and yearly aggregates, and
the monthly insights in text, JSON or XML form.`,
	Run: summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input messages file is required (--input)")
	}

	messages, err := common.ReadMessagesFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Failed to read messages file: %v", err)
	}

	now := root.ReferenceNow()
	result, err := ledger.Compute(messages, root.TargetAmount(), ledger.Options{
		ProviderSender: root.Cfg.Provider.Sender,
		CurrencyPrefix: root.Cfg.Currency.Prefix,
		Rules:          root.Rules(),
		PeriodDays:     root.Cfg.Savings.PeriodDays,
		Now:            now,
		Logger:         root.Logger(),
	})
	if err != nil {
		root.Log.Fatalf("Failed to compute summary: %v", err)
	}

	data, err := report.NewGenerator(root.Logger()).Summary(result.Summary(now), root.SharedFlags.Format)
	if err != nil {
		root.Log.Fatalf("Failed to render summary: %v", err)
	}

	if err := writeOutput(data, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Failed to write summary: %v", err)
	}
}

func writeOutput(data []byte, outputFile string) error {
	if outputFile == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(outputFile, data, 0600)
}
