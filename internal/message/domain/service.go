package domain

import (
	"context"
	"errors"

	"github.com/evabo/wasteflow/pkg/db/pagination"
)

type ListMessageRequest struct {
	PageToken string
	PageSize  int32
	Recipient string
	Sender    string
	Status    string
}

type ListMessageFilter struct {
	Recipient string
	Sender    string
	Status    string
}

type ListMessageResponse struct {
	pagination.PageInfo
	Messages []Message `json:"messages"`
}

type CreateMessageRequest struct {
	Sender    string
	Recipient string
	Subject   string
	Content   string
}

type UpdateMessageRequest struct {
	ID     string
	Status *string
}

type GetMessageRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateMessageRequest) (Message, error)
	List(context.Context, ListMessageRequest) (ListMessageResponse, error)
	GetByID(context.Context, GetMessageRequest) (Message, error)
	Update(context.Context, UpdateMessageRequest) (Message, error)
	UnreadCount(ctx context.Context, recipient string) (int64, error)
}

var (
	ErrInvalidSender    = errors.New("invalid_sender")
	ErrInvalidRecipient = errors.New("invalid_recipient")
	ErrInvalidSubject   = errors.New("invalid_subject")
	ErrInvalidContent   = errors.New("invalid_content")
	ErrInvalidStatus    = errors.New("invalid_status")
	ErrInvalidID        = errors.New("invalid_id")
	ErrNotFound         = errors.New("not_found")
)
