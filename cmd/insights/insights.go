// Package insights contains the command for rendering monthly insights.
package insights

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pesatrack/mpesa-csv/cmd/root"
	"pesatrack/mpesa-csv/internal/common"
	"pesatrack/mpesa-csv/internal/report"
	"pesatrack/mpesa-csv/pkg/ledger"
)

// Cmd is the insights command
var Cmd = &cobra.Command{
	Use:   "insights",
	Short: "Show monthly insights and savings progress from a message snapshot",
	Long: `Insights computes the most expensive deduction, the most frequent
counterpart, and the savings-target progress for the current calendar month.`,
	Run: insightsFunc,
}

func insightsFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input messages file is required (--input)")
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
		root.Log.Fatalf("Failed to compute insights: %v", err)
	}

	data, err := report.NewGenerator(root.Logger()).Insights(&result.Insights, root.SharedFlags.Format)
	if err != nil {
		root.Log.Fatalf("Failed to render insights: %v", err)
	}

	if root.SharedFlags.Output == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(root.SharedFlags.Output, data, 0600); err != nil {
		root.Log.Fatalf("Failed to write insights: %v", err)
	}
}
