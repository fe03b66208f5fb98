// Package balance contains the command for printing the extracted balance.
package balance

import (
	"fmt"

	"github.com/spf13/cobra"

	"pesatrack/mpesa-csv/cmd/root"
	"pesatrack/mpesa-csv/internal/balance"
	"pesatrack/mpesa-csv/internal/common"
	"pesatrack/mpesa-csv/internal/smsparser"
)

// Cmd is the balance command
var Cmd = &cobra.Command{
	Use:   "balance",
	Short: "Extract the current account balance from a message snapshot",
	Long: `Balance scans the most recent provider messages for a balance statement and
prints the extracted amount. Zero means no balance statement was found.`,
	Run: balanceFunc,
}

func balanceFunc(cmd *cobra.Command, args []string) {
	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input messages file is required (--input)")
	}

	messages, err := common.ReadMessagesFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Failed to read messages file: %v", err)
	}

	provider := smsparser.FilterProvider(messages, root.Cfg.Provider.Sender)
	extractor := balance.NewExtractor(root.Cfg.Currency.Prefix, root.Logger())
	fmt.Println(extractor.Extract(provider).StringFixed(2))
}
