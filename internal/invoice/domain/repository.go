package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListInvoiceFilter struct {
	Status Status
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB, filter ListInvoiceFilter, page pagination.Pagination) ([]*Invoice, error)

	// ListForStats loads only the columns the aggregation needs.
	ListForStats(ctx context.Context, db *gorm.DB) ([]Invoice, error)

	// UpdateStatus performs an atomic conditional status update: the write
	// applies only while the row still carries the expected status. A false
	// return means a concurrent writer won and the transition must fail.
	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, expected, next Status, updatedAt time.Time) (bool, error)
}
