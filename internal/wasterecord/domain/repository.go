package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, record *WasteRecord) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*WasteRecord, error)
	List(ctx context.Context, db *gorm.DB, filter ListWasteRecordFilter, page pagination.Pagination) ([]*WasteRecord, error)
	// ListAll returns every record with only the fields the report
	// aggregations need.
	ListAll(ctx context.Context, db *gorm.DB) ([]*WasteRecord, error)
	Update(ctx context.Context, db *gorm.DB, record *WasteRecord) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
