package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeCustomerMetrics(t *testing.T) {
	metrics := ComputeCustomerMetrics([]CustomerRow{
		{Type: "apartment", CreatedAt: date(2025, time.January, 5)},
		{Type: "apartment", CreatedAt: date(2025, time.January, 20)},
		{Type: "estate", CreatedAt: date(2025, time.February, 2)},
	})

	assert.Equal(t, int64(3), metrics.Total)
	assert.Equal(t, int64(2), metrics.ByType["apartment"])
	assert.Equal(t, int64(1), metrics.ByType["estate"])
	assert.Equal(t, int64(2), metrics.GrowthByMonth["2025-01"])
	assert.Equal(t, int64(1), metrics.GrowthByMonth["2025-02"])
}

func TestComputeWasteMetrics(t *testing.T) {
	metrics := ComputeWasteMetrics([]WasteRow{
		{WasteType: "organic", Quantity: decimal.NewFromFloat(10.5), RecordDate: date(2025, time.January, 5)},
		{WasteType: "organic", Quantity: decimal.NewFromFloat(4.5), RecordDate: date(2025, time.February, 5)},
		{WasteType: "plastic", Quantity: decimal.NewFromInt(3), RecordDate: date(2025, time.February, 6)},
	})

	assert.Equal(t, "18", metrics.TotalQuantity.String())
	assert.Equal(t, "15", metrics.ByType["organic"].String())
	assert.Equal(t, "3", metrics.ByType["plastic"].String())
	assert.Equal(t, "10.5", metrics.ByMonth["2025-01"].String())
	assert.Equal(t, "7.5", metrics.ByMonth["2025-02"].String())
}

func TestComputeFinancialMetrics(t *testing.T) {
	invoices := []InvoiceRow{
		{Amount: decimal.NewFromInt(250), Status: "paid", InvoiceDate: date(2025, time.January, 10)},
		{Amount: decimal.NewFromInt(100), Status: "paid", InvoiceDate: date(2025, time.February, 10)},
		{Amount: decimal.NewFromInt(75), Status: "unpaid", InvoiceDate: date(2025, time.February, 12)},
		{Amount: decimal.NewFromInt(30), Status: "draft", InvoiceDate: date(2025, time.February, 15)},
	}
	payments := []PaymentRow{
		{Amount: decimal.NewFromInt(120), Type: "disbursed", Status: "completed"},
		{Amount: decimal.NewFromInt(40), Type: "disbursed", Status: "pending"},
		{Amount: decimal.NewFromInt(90), Type: "collected", Status: "completed"},
	}

	metrics := ComputeFinancialMetrics(invoices, payments)
	assert.Equal(t, "350.00", metrics.Revenue.StringFixed(2))
	assert.Equal(t, "120.00", metrics.Expenses.StringFixed(2))
	assert.Equal(t, "230.00", metrics.NetIncome.StringFixed(2))
	assert.Equal(t, "75.00", metrics.UnpaidTotal.StringFixed(2))
	assert.Equal(t, int64(1), metrics.UnpaidCount)
	assert.Equal(t, "250.00", metrics.RevenueByMonth["2025-01"].StringFixed(2))
	assert.Equal(t, "100.00", metrics.RevenueByMonth["2025-02"].StringFixed(2))
}

func TestMergeActivity(t *testing.T) {
	a := []ActivityItem{
		{Kind: "invoice", OccurredAt: date(2025, time.March, 3)},
		{Kind: "invoice", OccurredAt: date(2025, time.March, 1)},
	}
	b := []ActivityItem{
		{Kind: "payment", OccurredAt: date(2025, time.March, 2)},
	}

	merged := MergeActivity(2, a, b)
	assert.Len(t, merged, 2)
	assert.Equal(t, "invoice", merged[0].Kind)
	assert.Equal(t, "payment", merged[1].Kind)
}
