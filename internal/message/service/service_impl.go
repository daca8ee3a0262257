package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/evabo/wasteflow/internal/clock"
	"github.com/evabo/wasteflow/internal/message/domain"
	"github.com/evabo/wasteflow/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("message.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateMessageRequest) (domain.Message, error) {
	sender := strings.TrimSpace(req.Sender)
	if sender == "" {
		return domain.Message{}, domain.ErrInvalidSender
	}
	recipient := strings.TrimSpace(req.Recipient)
	if recipient == "" {
		return domain.Message{}, domain.ErrInvalidRecipient
	}
	subject := strings.TrimSpace(req.Subject)
	if subject == "" {
		return domain.Message{}, domain.ErrInvalidSubject
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return domain.Message{}, domain.ErrInvalidContent
	}

	now := s.clock.Now()
	message := domain.Message{
		ID:        s.genID.Generate(),
		Sender:    sender,
		Recipient: recipient,
		Subject:   subject,
		Content:   content,
		Status:    domain.StatusUnread,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Insert(ctx, s.db, &message); err != nil {
		return domain.Message{}, err
	}

	return message, nil
}

func (s *Service) List(ctx context.Context, req domain.ListMessageRequest) (domain.ListMessageResponse, error) {
	filter := domain.ListMessageFilter{
		Recipient: strings.TrimSpace(req.Recipient),
		Sender:    strings.TrimSpace(req.Sender),
		Status:    strings.TrimSpace(req.Status),
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, filter, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListMessageResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(message *domain.Message) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        message.ID.String(),
			CreatedAt: message.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	messages := make([]domain.Message, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		messages = append(messages, *item)
	}

	resp := domain.ListMessageResponse{Messages: messages}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetMessageRequest) (domain.Message, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Message{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Message{}, err
	}
	if item == nil {
		return domain.Message{}, domain.ErrNotFound
	}

	return *item, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateMessageRequest) (domain.Message, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Message{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Message{}, err
	}
	if item == nil {
		return domain.Message{}, domain.ErrNotFound
	}

	if req.Status != nil {
		status := domain.MessageStatus(strings.TrimSpace(*req.Status))
		if status != domain.StatusUnread && status != domain.StatusRead {
			return domain.Message{}, domain.ErrInvalidStatus
		}
		item.Status = status
	}

	item.UpdatedAt = s.clock.Now()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return domain.Message{}, err
	}

	return *item, nil
}

func (s *Service) UnreadCount(ctx context.Context, recipient string) (int64, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return 0, domain.ErrInvalidRecipient
	}
	return s.repo.CountUnread(ctx, s.db, recipient)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
