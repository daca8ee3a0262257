package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// monthKey buckets a timestamp by calendar month, e.g. "2025-03".
func monthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

func ComputeCustomerMetrics(rows []CustomerRow) CustomerMetrics {
	metrics := CustomerMetrics{
		ByType:        map[string]int64{},
		GrowthByMonth: map[string]int64{},
	}
	for _, row := range rows {
		metrics.Total++
		metrics.ByType[row.Type]++
		metrics.GrowthByMonth[monthKey(row.CreatedAt)]++
	}
	return metrics
}

func ComputeWasteMetrics(rows []WasteRow) WasteMetrics {
	metrics := WasteMetrics{
		TotalQuantity: decimal.Zero,
		ByType:        map[string]decimal.Decimal{},
		ByMonth:       map[string]decimal.Decimal{},
	}
	for _, row := range rows {
		metrics.TotalQuantity = metrics.TotalQuantity.Add(row.Quantity)
		metrics.ByType[row.WasteType] = metrics.ByType[row.WasteType].Add(row.Quantity)
		key := monthKey(row.RecordDate)
		metrics.ByMonth[key] = metrics.ByMonth[key].Add(row.Quantity)
	}
	return metrics
}

// ComputeFinancialMetrics derives revenue from paid invoices and expenses
// from completed disbursed payments. Net income is their difference.
func ComputeFinancialMetrics(invoices []InvoiceRow, payments []PaymentRow) FinancialMetrics {
	metrics := FinancialMetrics{
		Revenue:        decimal.Zero,
		Expenses:       decimal.Zero,
		NetIncome:      decimal.Zero,
		UnpaidTotal:    decimal.Zero,
		RevenueByMonth: map[string]decimal.Decimal{},
	}
	for _, invoice := range invoices {
		switch invoice.Status {
		case "paid":
			metrics.Revenue = metrics.Revenue.Add(invoice.Amount)
			key := monthKey(invoice.InvoiceDate)
			metrics.RevenueByMonth[key] = metrics.RevenueByMonth[key].Add(invoice.Amount)
		case "unpaid":
			metrics.UnpaidTotal = metrics.UnpaidTotal.Add(invoice.Amount)
			metrics.UnpaidCount++
		}
	}
	for _, payment := range payments {
		if payment.Type == "disbursed" && payment.Status == "completed" {
			metrics.Expenses = metrics.Expenses.Add(payment.Amount)
		}
	}
	metrics.NetIncome = metrics.Revenue.Sub(metrics.Expenses)
	return metrics
}

// MergeActivity interleaves per-source feeds into one list, newest first,
// capped at limit.
func MergeActivity(limit int, feeds ...[]ActivityItem) []ActivityItem {
	var merged []ActivityItem
	for _, feed := range feeds {
		merged = append(merged, feed...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].OccurredAt.After(merged[j].OccurredAt)
	})
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
