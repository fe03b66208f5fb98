// Package root contains the root command for the application
package root

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pesatrack/mpesa-csv/internal/common"
	"pesatrack/mpesa-csv/internal/config"
	"pesatrack/mpesa-csv/internal/logging"
	"pesatrack/mpesa-csv/internal/rulestore"
	"pesatrack/mpesa-csv/internal/smsparser"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Format string
	Now    string
	Target string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "mpesa-csv",
		Short: "A CLI tool to turn mobile-money SMS exports into a transaction ledger with reports.",
		Long: `mpesa-csv parses a snapshot of M-Pesa style notification messages into a
structured transaction ledger, and computes the account balance, calendar
aggregates and monthly insights over it.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to mpesa-csv!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			common.SetLogger(Log)
			common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input messages file (.csv or .json)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "text", "Report format (text, json, xml)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Now, "now", "", "Reference instant (RFC3339 or YYYY-MM-DD), defaults to wall clock")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Target, "target", "t", "", "Monthly savings target (overrides configuration)")
}

// Logger adapts the shared logrus instance to the internal Logger interface.
func Logger() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// ReferenceNow resolves the reference instant for this run. The --now flag
// makes runs deterministic; without it the wall clock applies.
func ReferenceNow() time.Time {
	if SharedFlags.Now == "" {
		return time.Now()
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, SharedFlags.Now, time.Local); err == nil {
			return t
		}
	}
	Log.Fatalf("Invalid --now value: %s (use RFC3339 or YYYY-MM-DD)", SharedFlags.Now)
	return time.Time{}
}

// TargetAmount resolves the savings target: the --target flag wins over the
// configured value.
func TargetAmount() decimal.Decimal {
	if SharedFlags.Target != "" {
		target, err := decimal.NewFromString(SharedFlags.Target)
		if err != nil {
			Log.Fatalf("Invalid --target value: %s", SharedFlags.Target)
		}
		return target
	}
	target, err := Cfg.TargetAmount()
	if err != nil {
		Log.Fatalf("Invalid configured savings target: %v", err)
	}
	return target
}

// Rules loads classification rule overrides when a rules file is
// configured; otherwise the built-in rules apply.
func Rules() []smsparser.Rule {
	if Cfg == nil || Cfg.Rules.File == "" {
		return nil
	}
	rules, err := rulestore.NewRuleStore(Cfg.Rules.File, Logger()).Load()
	if err != nil {
		Log.Fatalf("Failed to load classification rules from %s: %v", Cfg.Rules.File, err)
	}
	return rules
}
