package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	payments := []*Payment{
		{Amount: decimal.NewFromInt(100), Type: TypeCollected, Status: StatusCompleted},
		{Amount: decimal.NewFromInt(40), Type: TypeCollected, Status: StatusCompleted},
		{Amount: decimal.NewFromInt(60), Type: TypeDisbursed, Status: StatusCompleted},
		{Amount: decimal.NewFromInt(25), Type: TypeCollected, Status: StatusPending},
		{Amount: decimal.NewFromInt(15), Type: TypeDisbursed, Status: StatusPending},
		nil,
	}

	totals := ComputeTotals(payments)
	assert.Equal(t, "140.00", totals.Collected.StringFixed(2))
	assert.Equal(t, "60.00", totals.Disbursed.StringFixed(2))
	// Pending wins over type: both pending rows land in the same bucket.
	assert.Equal(t, "40.00", totals.Pending.StringFixed(2))
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil)
	assert.True(t, totals.Collected.IsZero())
	assert.True(t, totals.Disbursed.IsZero())
	assert.True(t, totals.Pending.IsZero())
}
