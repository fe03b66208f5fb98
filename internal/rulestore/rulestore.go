// Package rulestore loads classification rule overrides from YAML files,
// letting deployments extend the built-in phrase patterns without a rebuild.
package rulestore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"pesatrack/mpesa-csv/internal/logging"
	"pesatrack/mpesa-csv/internal/models"
	"pesatrack/mpesa-csv/internal/smsparser"
)

// ruleConfig is the YAML shape of one classification rule.
type ruleConfig struct {
	Kind    string `yaml:"kind"`
	Pattern string `yaml:"pattern"`
}

// rulesFile is the YAML shape of a rule override file.
type rulesFile struct {
	Rules []ruleConfig `yaml:"rules"`
}

// RuleStore manages loading of classification rule data.
type RuleStore struct {
	File   string
	logger logging.Logger
}

// NewRuleStore creates a store for the given rules file path.
func NewRuleStore(file string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &RuleStore{File: file, logger: logger}
}

// Load reads and compiles the rules from the YAML file, preserving the file
// order (ordering is significant: first match wins).
func (s *RuleStore) Load() ([]smsparser.Rule, error) {
	path, err := s.resolveFile()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error reading rules file: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}

	rules := make([]smsparser.Rule, 0, len(file.Rules))
	for i, rc := range file.Rules {
		if rc.Kind != models.KindCredit && rc.Kind != models.KindDeduction {
			return nil, fmt.Errorf("rule %d: unknown kind %q", i, rc.Kind)
		}
		pattern, err := regexp.Compile(rc.Pattern)
		if err != nil {
			return nil, fmt.Errorf("rule %d: invalid pattern: %w", i, err)
		}
		rules = append(rules, smsparser.Rule{Kind: rc.Kind, Pattern: pattern})
	}

	s.logger.Debug("Loaded classification rules",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(rules)})
	return rules, nil
}

// resolveFile looks for the rules file in standard locations when the
// configured path is relative.
func (s *RuleStore) resolveFile() (string, error) {
	if filepath.IsAbs(s.File) {
		if _, err := os.Stat(s.File); err == nil {
			return s.File, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		s.File,
		filepath.Join("config", s.File),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".mpesa-csv", s.File))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}
