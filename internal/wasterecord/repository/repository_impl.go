package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/internal/wasterecord/domain"
	"github.com/evabo/wasteflow/pkg/db/option"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, record *domain.WasteRecord) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO waste_records (id, supplier_id, waste_type, quantity, location, status, record_date, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.SupplierID,
		record.WasteType,
		record.Quantity,
		record.Location,
		record.Status,
		record.RecordDate,
		record.CreatedAt,
		record.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.WasteRecord, error) {
	var record domain.WasteRecord
	err := db.WithContext(ctx).
		Model(&domain.WasteRecord{}).
		Where("id = ?", id).
		Scan(&record).Error
	if err != nil {
		return nil, err
	}
	if record.ID == 0 {
		return nil, nil
	}
	return &record, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListWasteRecordFilter, page pagination.Pagination) ([]*domain.WasteRecord, error) {
	var records []*domain.WasteRecord
	stmt := db.WithContext(ctx).
		Model(&domain.WasteRecord{})
	if filter.SupplierID != "" {
		stmt = stmt.Where("supplier_id = ?", filter.SupplierID)
	}
	if filter.WasteType != "" {
		stmt = stmt.Where("waste_type = ?", filter.WasteType)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]*domain.WasteRecord, error) {
	var records []*domain.WasteRecord
	err := db.WithContext(ctx).
		Model(&domain.WasteRecord{}).
		Select("id", "waste_type", "quantity", "status", "record_date").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, record *domain.WasteRecord) error {
	return db.WithContext(ctx).Exec(
		`UPDATE waste_records
		 SET waste_type = ?, quantity = ?, location = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		record.WasteType,
		record.Quantity,
		record.Location,
		record.Status,
		record.UpdatedAt,
		record.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(`DELETE FROM waste_records WHERE id = ?`, id).Error
}
