package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Slim row shapes loaded for aggregation. Only the fields the metrics
// need are selected.

type CustomerRow struct {
	Type      string
	CreatedAt time.Time
}

type WasteRow struct {
	WasteType  string
	Quantity   decimal.Decimal
	RecordDate time.Time
}

type InvoiceRow struct {
	Amount      decimal.Decimal
	Status      string
	InvoiceDate time.Time
}

type PaymentRow struct {
	Amount      decimal.Decimal
	Type        string
	Status      string
	PaymentDate time.Time
}

type CustomerMetrics struct {
	Total         int64            `json:"total"`
	ByType        map[string]int64 `json:"by_type"`
	GrowthByMonth map[string]int64 `json:"growth_by_month"`
}

type WasteMetrics struct {
	TotalQuantity decimal.Decimal            `json:"total_quantity"`
	ByType        map[string]decimal.Decimal `json:"by_type"`
	ByMonth       map[string]decimal.Decimal `json:"by_month"`
}

type FinancialMetrics struct {
	Revenue        decimal.Decimal            `json:"revenue"`
	Expenses       decimal.Decimal            `json:"expenses"`
	NetIncome      decimal.Decimal            `json:"net_income"`
	UnpaidTotal    decimal.Decimal            `json:"unpaid_total"`
	UnpaidCount    int64                      `json:"unpaid_count"`
	RevenueByMonth map[string]decimal.Decimal `json:"revenue_by_month"`
}

// ActivityItem is one entry in the dashboard's recent-activity feed.
type ActivityItem struct {
	Kind       string    `json:"kind"`
	Ref        string    `json:"ref"`
	Summary    string    `json:"summary"`
	OccurredAt time.Time `json:"occurred_at"`
}
