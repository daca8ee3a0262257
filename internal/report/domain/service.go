package domain

import (
	"context"

	invoicedomain "github.com/evabo/wasteflow/internal/invoice/domain"
)

// DashboardStats backs the dashboard summary cards.
type DashboardStats struct {
	InvoiceTotals invoicedomain.StatusTotals `json:"invoice_totals"`
	Customers     CustomerMetrics            `json:"customers"`
	Waste         WasteMetrics               `json:"waste"`
	Financial     FinancialMetrics           `json:"financial"`
}

type Service interface {
	CustomerReport(context.Context) (CustomerMetrics, error)
	WasteReport(context.Context) (WasteMetrics, error)
	FinancialReport(context.Context) (FinancialMetrics, error)
	DashboardStats(context.Context) (DashboardStats, error)
	RecentActivity(ctx context.Context, limit int) ([]ActivityItem, error)
}
