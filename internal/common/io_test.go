package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pesatrack/mpesa-csv/internal/models"
)

func TestReadMessagesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.csv")
	content := "ID,Sender,Body,Date\n" +
		"1,MPESA,\"ABC Confirmed. Ksh100.00 sent to JOHN on 1/1/25.\",\"1/1/2025, 9:00:00 AM\"\n" +
		"2,MPESA,Welcome to M-PESA.,1735800600000\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	messages, err := ReadMessagesFile(path)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "1", messages[0].ID)
	assert.Equal(t, "MPESA", messages[0].Sender)
	assert.Contains(t, messages[0].Body, "sent to JOHN")
	assert.Equal(t, "1/1/2025, 9:00:00 AM", messages[0].Date)
	assert.Equal(t, "1735800600000", messages[1].Date)
}

func TestReadMessagesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.json")
	content := `[
  {"id": "1", "sender": "MPESA", "body": "Ksh100.00 sent to JOHN on 1/1/25.", "date": "1735800600000"},
  {"id": "2", "sender": "MPESA", "body": "Welcome.", "date": "1/2/2025"}
]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	messages, err := ReadMessagesFile(path)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "1735800600000", messages[0].Date)
	assert.Equal(t, "2", messages[1].ID)
}

func TestReadMessagesFileMissing(t *testing.T) {
	_, err := ReadMessagesFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
}

func TestWriteTransactionsToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "transactions.csv")
	ts := time.Date(2025, time.January, 2, 14, 30, 0, 0, time.Local)
	transactions := []models.Transaction{
		models.NewTransaction("1", ts, decimal.NewFromFloat(2500), "JOHN DOE", models.KindDeduction),
		models.NewTransaction("2", ts, decimal.NewFromFloat(99.9), "", models.KindCredit),
	}

	require.NoError(t, WriteTransactionsToCSV(transactions, path))

	data, err := os.ReadFile(path) // #nosec G304 -- test reads its own temp file
	require.NoError(t, err)

	out := string(data)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Date,Amount,Counterpart,Kind", lines[0])
	assert.Contains(t, lines[1], "2500.00")
	assert.Contains(t, lines[1], "JOHN DOE")
	assert.Contains(t, lines[2], "99.90")
	assert.Contains(t, lines[2], "credit")
}

func TestWriteTransactionsNil(t *testing.T) {
	err := WriteTransactionsToCSV(nil, filepath.Join(t.TempDir(), "out.csv"))
	require.Error(t, err)
}

func TestWriteEmptyTransactions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")

	require.NoError(t, WriteTransactionsToCSV([]models.Transaction{}, path))

	data, err := os.ReadFile(path) // #nosec G304 -- test reads its own temp file
	require.NoError(t, err)
	assert.Contains(t, string(data), "ID,Date,Amount,Counterpart,Kind")
}
