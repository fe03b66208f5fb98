package rulestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pesatrack/mpesa-csv/internal/logging"
	"pesatrack/mpesa-csv/internal/models"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadRules(t *testing.T) {
	path := writeRulesFile(t, `rules:
  - kind: deduction
    pattern: 'sent to (.+?) on'
  - kind: credit
    pattern: 'received from (.+?) on'
`)

	store := NewRuleStore(path, &logging.MockLogger{})
	rules, err := store.Load()

	require.NoError(t, err)
	require.Len(t, rules, 2)

	// File order is preserved: first match wins downstream.
	assert.Equal(t, models.KindDeduction, rules[0].Kind)
	assert.Equal(t, models.KindCredit, rules[1].Kind)

	match := rules[0].Pattern.FindStringSubmatch("Ksh100.00 sent to JOHN on 1/1/25")
	require.NotNil(t, match)
	assert.Equal(t, "JOHN", match[1])
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	path := writeRulesFile(t, `rules:
  - kind: transfer
    pattern: 'moved to (.+?) on'
`)

	_, err := NewRuleStore(path, &logging.MockLogger{}).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestLoadRejectsInvalidPattern(t *testing.T) {
	path := writeRulesFile(t, `rules:
  - kind: credit
    pattern: '([unclosed'
`)

	_, err := NewRuleStore(path, &logging.MockLogger{}).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestLoadMissingFile(t *testing.T) {
	store := NewRuleStore(filepath.Join(t.TempDir(), "absent.yaml"), &logging.MockLogger{})

	_, err := store.Load()
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeRulesFile(t, "rules: [not closed")

	_, err := NewRuleStore(path, &logging.MockLogger{}).Load()
	require.Error(t, err)
}
