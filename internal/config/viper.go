package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"pesatrack/mpesa-csv/internal/parsererror"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Provider struct {
		// Sender is the provider identity messages must carry to qualify.
		// Matching is a case-insensitive substring test.
		Sender string `mapstructure:"sender" yaml:"sender"`
	} `mapstructure:"provider" yaml:"provider"`

	Currency struct {
		// Prefix is the currency marker preceding amounts in message bodies.
		Prefix string `mapstructure:"prefix" yaml:"prefix"`
	} `mapstructure:"currency" yaml:"currency"`

	Savings struct {
		Target string `mapstructure:"target" yaml:"target"`
		// PeriodDays is the nominal period used for the expected-savings
		// projection, not the actual days in the current month.
		PeriodDays int `mapstructure:"period_days" yaml:"period_days"`
	} `mapstructure:"savings" yaml:"savings"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Rules struct {
		// File optionally points to a YAML file overriding the built-in
		// classification rules.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`
}

// TargetAmount parses the configured savings target into a decimal value.
func (c *Config) TargetAmount() (decimal.Decimal, error) {
	if c.Savings.Target == "" {
		return decimal.Zero, nil
	}
	target, err := decimal.NewFromString(c.Savings.Target)
	if err != nil {
		return decimal.Zero, &parsererror.InvalidTargetError{
			Target: c.Savings.Target,
			Reason: "not a numeric value",
		}
	}
	return target, nil
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.mpesa-csv")
	v.AddConfigPath(".mpesa-csv")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("PESA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			Logger.Warnf("error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
		// Config file not found is fine, defaults and env vars apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("provider.sender", "MPESA")
	v.SetDefault("currency.prefix", "Ksh")

	v.SetDefault("savings.target", "0")
	v.SetDefault("savings.period_days", 30)

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("rules.file", "")
}

// validateConfig validates the configuration values.
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Provider.Sender == "" {
		return fmt.Errorf("provider.sender must not be empty")
	}

	if config.Currency.Prefix == "" {
		return fmt.Errorf("currency.prefix must not be empty")
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Savings.PeriodDays < 1 {
		return fmt.Errorf("savings.period_days must be at least 1, got: %d", config.Savings.PeriodDays)
	}

	target, err := config.TargetAmount()
	if err != nil {
		return err
	}
	if target.IsNegative() {
		return &parsererror.InvalidTargetError{
			Target: config.Savings.Target,
			Reason: "must not be negative",
		}
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
