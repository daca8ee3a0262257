package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/internal/supplier/domain"
	"github.com/evabo/wasteflow/pkg/db/option"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, supplier *domain.Supplier) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO suppliers (id, name, contact_person, email, phone, status, waste_types, location, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		supplier.ID,
		supplier.Name,
		supplier.ContactPerson,
		supplier.Email,
		supplier.Phone,
		supplier.Status,
		supplier.WasteTypes,
		supplier.Location,
		supplier.CreatedAt,
		supplier.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Supplier, error) {
	var supplier domain.Supplier
	err := db.WithContext(ctx).
		Model(&domain.Supplier{}).
		Where("id = ?", id).
		Scan(&supplier).Error
	if err != nil {
		return nil, err
	}
	if supplier.ID == 0 {
		return nil, nil
	}
	return &supplier, nil
}

func (r *repo) FindConflicts(ctx context.Context, db *gorm.DB, name, email, phone string, excludeID snowflake.ID) ([]*domain.Supplier, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.Supplier{}).
		Where(db.Where("name = ?", name).Or("email = ?", email).Or("phone = ? AND phone <> ''", phone))
	if excludeID != 0 {
		stmt = stmt.Where("id <> ?", excludeID)
	}

	var suppliers []*domain.Supplier
	if err := stmt.Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListSupplierFilter, page pagination.Pagination) ([]*domain.Supplier, error) {
	var suppliers []*domain.Supplier
	stmt := db.WithContext(ctx).
		Model(&domain.Supplier{})
	if filter.Name != "" {
		stmt = stmt.Where("name = ?", filter.Name)
	}
	if filter.Email != "" {
		stmt = stmt.Where("email = ?", filter.Email)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&suppliers).Error
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, supplier *domain.Supplier) error {
	return db.WithContext(ctx).Exec(
		`UPDATE suppliers
		 SET name = ?, contact_person = ?, email = ?, phone = ?, status = ?, waste_types = ?, location = ?, updated_at = ?
		 WHERE id = ?`,
		supplier.Name,
		supplier.ContactPerson,
		supplier.Email,
		supplier.Phone,
		supplier.Status,
		supplier.WasteTypes,
		supplier.Location,
		supplier.UpdatedAt,
		supplier.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(`DELETE FROM suppliers WHERE id = ?`, id).Error
}
