package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBucketAdd(t *testing.T) {
	bucket := Bucket{Label: "Today"}

	bucket.Add(Transaction{Kind: KindCredit, Amount: decimal.NewFromInt(1000)})
	bucket.Add(Transaction{Kind: KindDeduction, Amount: decimal.NewFromInt(300)})
	bucket.Add(Transaction{Kind: KindDeduction, Amount: decimal.NewFromInt(200)})
	bucket.Add(Transaction{Kind: "unknown", Amount: decimal.NewFromInt(999)})

	assert.True(t, decimal.NewFromInt(1000).Equal(bucket.Income))
	assert.True(t, decimal.NewFromInt(500).Equal(bucket.Expense))
}

func TestBucketContainsInclusiveBounds(t *testing.T) {
	start := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.Local)
	end := start.Add(24*time.Hour - time.Millisecond)
	bucket := Bucket{WindowStart: start, WindowEnd: end}

	assert.True(t, bucket.Contains(start))
	assert.True(t, bucket.Contains(end))
	assert.False(t, bucket.Contains(start.Add(-time.Millisecond)))
	assert.False(t, bucket.Contains(end.Add(time.Millisecond)))
}

func TestProgressLabel(t *testing.T) {
	progress := SavingsProgress{Ratio: decimal.NewFromFloat(0.25)}
	assert.Equal(t, "25.00%", progress.ProgressLabel())

	full := SavingsProgress{Ratio: decimal.NewFromInt(1)}
	assert.Equal(t, "100.00%", full.ProgressLabel())

	empty := SavingsProgress{}
	assert.Equal(t, "0.00%", empty.ProgressLabel())
}

func TestSkipCountsTotal(t *testing.T) {
	counts := SkipCounts{UnparseableAmount: 2, Unclassified: 3, MalformedDate: 1}
	assert.Equal(t, 6, counts.Total())

	assert.Equal(t, 0, SkipCounts{}.Total())
}
