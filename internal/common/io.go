// Package common provides the shared file input and output used by the CLI
// commands: message snapshots in and transaction CSV out.
package common

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"pesatrack/mpesa-csv/internal/config"
	"pesatrack/mpesa-csv/internal/models"
)

var log = config.Logger

// Delimiter is the CSV delimiter, configurable via config or environment.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV input and output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// ReadMessagesFile reads a message snapshot from a CSV or JSON file, chosen
// by file extension. JSON is the format the companion mobile app persists
// its inbox snapshot in; CSV is the exported spreadsheet form.
func ReadMessagesFile(filePath string) ([]models.RawMessage, error) {
	log.WithField("file", filePath).Info("Reading message snapshot")

	if strings.EqualFold(filepath.Ext(filePath), ".json") {
		return readMessagesJSON(filePath)
	}
	return readMessagesCSV(filePath)
}

func readMessagesJSON(filePath string) ([]models.RawMessage, error) {
	data, err := os.ReadFile(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening messages file: %w", err)
	}

	var messages []models.RawMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("error parsing JSON messages file: %w", err)
	}

	log.WithField("count", len(messages)).Info("Successfully read message snapshot")
	return messages, nil
}

func readMessagesCSV(filePath string) ([]models.RawMessage, error) {
	file, err := os.Open(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error opening messages file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = Delimiter
		return r
	})
	defer gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		return csv.NewReader(in)
	})

	var messages []models.RawMessage
	if err := gocsv.UnmarshalFile(file, &messages); err != nil {
		return nil, fmt.Errorf("error parsing CSV messages file: %w", err)
	}

	log.WithField("count", len(messages)).Info("Successfully read message snapshot")
	return messages, nil
}

// WriteTransactionsToCSV writes transactions to a CSV file in the standard
// output format. All amounts are rendered with two decimal places.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Writing transactions to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		log.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	for i := range transactions {
		transactions[i].Amount = fixedAmount(transactions[i].Amount)
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(transactions, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal transactions to CSV")
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(transactions),
	}).Info("Successfully wrote transactions to CSV file")

	return nil
}

// fixedAmount re-parses an amount at two decimal places so CSV output is
// uniformly formatted.
func fixedAmount(amount decimal.Decimal) decimal.Decimal {
	fixed, err := decimal.NewFromString(amount.StringFixed(2))
	if err != nil {
		return amount
	}
	return fixed
}
