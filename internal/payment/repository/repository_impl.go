package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/internal/payment/domain"
	"github.com/evabo/wasteflow/pkg/db/option"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, payment *domain.Payment) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO payments (id, customer_id, supplier_id, invoice_id, amount, type, status, method, reference, payment_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		payment.ID,
		payment.CustomerID,
		payment.SupplierID,
		payment.InvoiceID,
		payment.Amount,
		payment.Type,
		payment.Status,
		payment.Method,
		payment.Reference,
		payment.PaymentDate,
		payment.CreatedAt,
		payment.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Payment, error) {
	var payment domain.Payment
	err := db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("id = ?", id).
		Scan(&payment).Error
	if err != nil {
		return nil, err
	}
	if payment.ID == 0 {
		return nil, nil
	}
	return &payment, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListPaymentFilter, page pagination.Pagination) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	stmt := db.WithContext(ctx).
		Model(&domain.Payment{})
	if filter.CustomerID != "" {
		stmt = stmt.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.SupplierID != "" {
		stmt = stmt.Where("supplier_id = ?", filter.SupplierID)
	}
	if filter.Type != "" {
		stmt = stmt.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repo) ListForStats(ctx context.Context, db *gorm.DB) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	err := db.WithContext(ctx).
		Model(&domain.Payment{}).
		Select("id", "amount", "type", "status", "payment_date").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, payment *domain.Payment) error {
	return db.WithContext(ctx).Exec(
		`UPDATE payments
		 SET status = ?, method = ?, reference = ?, updated_at = ?
		 WHERE id = ?`,
		payment.Status,
		payment.Method,
		payment.Reference,
		payment.UpdatedAt,
		payment.ID,
	).Error
}
