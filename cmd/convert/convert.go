// Package convert contains the command for converting a message snapshot
// into a transactions CSV.
package convert

import (
	"github.com/spf13/cobra"

	"pesatrack/mpesa-csv/cmd/root"
	"pesatrack/mpesa-csv/internal/common"
	"pesatrack/mpesa-csv/pkg/ledger"
)

// Cmd is the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a message snapshot to a transactions CSV",
	Long: `Convert parses a snapshot of provider notification messages (CSV or JSON)
into a structured transaction ledger and writes it as a standard CSV file.

Messages that carry no parseable amount, match no classification rule, or
have a malformed date are skipped and counted, never failing the run.`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input messages file is required (--input)")
	}
	if root.SharedFlags.Output == "" {
		root.Log.Fatal("Output CSV file is required (--output)")
	}

	messages, err := common.ReadMessagesFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Failed to read messages file: %v", err)
	}

	result, err := ledger.Compute(messages, root.TargetAmount(), ledger.Options{
		ProviderSender: root.Cfg.Provider.Sender,
		CurrencyPrefix: root.Cfg.Currency.Prefix,
		Rules:          root.Rules(),
		PeriodDays:     root.Cfg.Savings.PeriodDays,
		Now:            root.ReferenceNow(),
		Logger:         root.Logger(),
	})
	if err != nil {
		root.Log.Fatalf("Failed to compute ledger: %v", err)
	}

	if err := common.WriteTransactionsToCSV(result.Transactions, root.SharedFlags.Output); err != nil {
		root.Log.Fatalf("Failed to write transactions CSV: %v", err)
	}

	root.Log.Infof("Wrote %d transactions (%d messages skipped)",
		len(result.Transactions), result.Skipped.Total())
}
