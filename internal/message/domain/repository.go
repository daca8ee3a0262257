package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, message *Message) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Message, error)
	List(ctx context.Context, db *gorm.DB, filter ListMessageFilter, page pagination.Pagination) ([]*Message, error)
	CountUnread(ctx context.Context, db *gorm.DB, recipient string) (int64, error)
	Update(ctx context.Context, db *gorm.DB, message *Message) error
}
