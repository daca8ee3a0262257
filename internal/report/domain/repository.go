package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository loads the slim row sets the aggregations run over. Queries
// select only the aggregated columns.
type Repository interface {
	CustomerRows(ctx context.Context, db *gorm.DB) ([]CustomerRow, error)
	WasteRows(ctx context.Context, db *gorm.DB) ([]WasteRow, error)
	InvoiceRows(ctx context.Context, db *gorm.DB) ([]InvoiceRow, error)
	PaymentRows(ctx context.Context, db *gorm.DB) ([]PaymentRow, error)
	RecentInvoices(ctx context.Context, db *gorm.DB, limit int) ([]ActivityItem, error)
	RecentPayments(ctx context.Context, db *gorm.DB, limit int) ([]ActivityItem, error)
	RecentWasteRecords(ctx context.Context, db *gorm.DB, limit int) ([]ActivityItem, error)
}
