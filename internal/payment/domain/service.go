package domain

import (
	"context"
	"errors"
	"time"

	"github.com/evabo/wasteflow/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

type ListPaymentRequest struct {
	PageToken  string
	PageSize   int32
	CustomerID string
	SupplierID string
	Type       string
	Status     string
}

type ListPaymentFilter struct {
	CustomerID string
	SupplierID string
	Type       string
	Status     string
}

type ListPaymentResponse struct {
	pagination.PageInfo
	Payments []Payment `json:"payments"`
}

type CreatePaymentRequest struct {
	CustomerID  string
	SupplierID  string
	InvoiceID   string
	Amount      decimal.Decimal
	Type        string
	Method      string
	Reference   string
	PaymentDate time.Time
}

type UpdatePaymentRequest struct {
	ID        string
	Status    *string
	Method    *string
	Reference *string
}

type GetPaymentRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreatePaymentRequest) (Payment, error)
	List(context.Context, ListPaymentRequest) (ListPaymentResponse, error)
	GetByID(context.Context, GetPaymentRequest) (Payment, error)
	Update(context.Context, UpdatePaymentRequest) (Payment, error)
	Stats(context.Context) (PaymentTotals, error)
}

var (
	ErrInvalidAmount      = errors.New("invalid_amount")
	ErrInvalidType        = errors.New("invalid_type")
	ErrInvalidStatus      = errors.New("invalid_status")
	ErrInvalidParty       = errors.New("invalid_party")
	ErrInvalidPaymentDate = errors.New("invalid_payment_date")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
)
