package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/internal/message/domain"
	"github.com/evabo/wasteflow/pkg/db/option"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, message *domain.Message) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO messages (id, sender, recipient, subject, content, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		message.ID,
		message.Sender,
		message.Recipient,
		message.Subject,
		message.Content,
		message.Status,
		message.CreatedAt,
		message.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Message, error) {
	var message domain.Message
	err := db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("id = ?", id).
		Scan(&message).Error
	if err != nil {
		return nil, err
	}
	if message.ID == 0 {
		return nil, nil
	}
	return &message, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListMessageFilter, page pagination.Pagination) ([]*domain.Message, error) {
	var messages []*domain.Message
	stmt := db.WithContext(ctx).
		Model(&domain.Message{})
	if filter.Recipient != "" {
		stmt = stmt.Where("recipient = ?", filter.Recipient)
	}
	if filter.Sender != "" {
		stmt = stmt.Where("sender = ?", filter.Sender)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *repo) CountUnread(ctx context.Context, db *gorm.DB, recipient string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("recipient = ? AND status = ?", recipient, domain.StatusUnread).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, message *domain.Message) error {
	return db.WithContext(ctx).Exec(
		`UPDATE messages SET status = ?, updated_at = ? WHERE id = ?`,
		message.Status,
		message.UpdatedAt,
		message.ID,
	).Error
}
