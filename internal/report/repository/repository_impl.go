package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/evabo/wasteflow/internal/report/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) CustomerRows(ctx context.Context, db *gorm.DB) ([]domain.CustomerRow, error) {
	var rows []domain.CustomerRow
	err := db.WithContext(ctx).
		Raw(`SELECT type, created_at FROM customers`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) WasteRows(ctx context.Context, db *gorm.DB) ([]domain.WasteRow, error) {
	var rows []domain.WasteRow
	err := db.WithContext(ctx).
		Raw(`SELECT waste_type, quantity, record_date FROM waste_records`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) InvoiceRows(ctx context.Context, db *gorm.DB) ([]domain.InvoiceRow, error) {
	var rows []domain.InvoiceRow
	err := db.WithContext(ctx).
		Raw(`SELECT amount, status, invoice_date FROM invoices`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) PaymentRows(ctx context.Context, db *gorm.DB) ([]domain.PaymentRow, error) {
	var rows []domain.PaymentRow
	err := db.WithContext(ctx).
		Raw(`SELECT amount, type, status, payment_date FROM payments`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type activityRow struct {
	ID        string
	Label     string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

func (r *repo) RecentInvoices(ctx context.Context, db *gorm.DB, limit int) ([]domain.ActivityItem, error) {
	var rows []activityRow
	err := db.WithContext(ctx).
		Raw(`SELECT id, status AS label, amount, created_at FROM invoices ORDER BY created_at DESC LIMIT ?`, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]domain.ActivityItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.ActivityItem{
			Kind:       "invoice",
			Ref:        row.ID,
			Summary:    fmt.Sprintf("invoice %s (%s)", row.Amount.StringFixed(2), row.Label),
			OccurredAt: row.CreatedAt,
		})
	}
	return items, nil
}

func (r *repo) RecentPayments(ctx context.Context, db *gorm.DB, limit int) ([]domain.ActivityItem, error) {
	var rows []activityRow
	err := db.WithContext(ctx).
		Raw(`SELECT id, type AS label, amount, created_at FROM payments ORDER BY created_at DESC LIMIT ?`, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]domain.ActivityItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.ActivityItem{
			Kind:       "payment",
			Ref:        row.ID,
			Summary:    fmt.Sprintf("payment %s (%s)", row.Amount.StringFixed(2), row.Label),
			OccurredAt: row.CreatedAt,
		})
	}
	return items, nil
}

func (r *repo) RecentWasteRecords(ctx context.Context, db *gorm.DB, limit int) ([]domain.ActivityItem, error) {
	var rows []activityRow
	err := db.WithContext(ctx).
		Raw(`SELECT id, waste_type AS label, quantity AS amount, created_at FROM waste_records ORDER BY created_at DESC LIMIT ?`, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]domain.ActivityItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.ActivityItem{
			Kind:       "waste_record",
			Ref:        row.ID,
			Summary:    fmt.Sprintf("%s kg of %s recorded", row.Amount.String(), row.Label),
			OccurredAt: row.CreatedAt,
		})
	}
	return items, nil
}
