package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, supplier *Supplier) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Supplier, error)
	// FindConflicts returns suppliers sharing the given name, email or
	// phone, excluding the supplier with excludeID when non-zero.
	FindConflicts(ctx context.Context, db *gorm.DB, name, email, phone string, excludeID snowflake.ID) ([]*Supplier, error)
	List(ctx context.Context, db *gorm.DB, filter ListSupplierFilter, page pagination.Pagination) ([]*Supplier, error)
	Update(ctx context.Context, db *gorm.DB, supplier *Supplier) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
