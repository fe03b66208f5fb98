package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pesatrack/mpesa-csv/internal/parsererror"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected time.Time
	}{
		{
			name:     "epoch milliseconds",
			raw:      "1735800600000",
			expected: time.UnixMilli(1735800600000),
		},
		{
			name:     "date with PM time",
			raw:      "1/2/2025, 2:30:00 PM",
			expected: time.Date(2025, time.January, 2, 14, 30, 0, 0, time.Local),
		},
		{
			name:     "date with AM time",
			raw:      "1/2/2025, 9:15:30 AM",
			expected: time.Date(2025, time.January, 2, 9, 15, 30, 0, time.Local),
		},
		{
			name:     "noon stays twelve",
			raw:      "3/15/2025, 12:00:00 PM",
			expected: time.Date(2025, time.March, 15, 12, 0, 0, 0, time.Local),
		},
		{
			name:     "midnight becomes zero",
			raw:      "3/15/2025, 12:00:00 AM",
			expected: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.Local),
		},
		{
			name:     "time without period marker",
			raw:      "6/1/2025, 8:05:00",
			expected: time.Date(2025, time.June, 1, 8, 5, 0, 0, time.Local),
		},
		{
			name:     "bare date at local midnight",
			raw:      "12/31/2024",
			expected: time.Date(2024, time.December, 31, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestNormalizeDateMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty string", raw: ""},
		{name: "whitespace only", raw: "   "},
		{name: "two date fields", raw: "1/2025"},
		{name: "non numeric date field", raw: "Jan/2/2025"},
		{name: "two time fields", raw: "1/2/2025, 2:30 PM"},
		{name: "non numeric hour", raw: "1/2/2025, two:30:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeDate(tt.raw)
			require.Error(t, err)
			var dateErr *parsererror.MalformedDateError
			assert.ErrorAs(t, err, &dateErr)
		})
	}
}
