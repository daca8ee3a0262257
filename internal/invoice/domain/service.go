package domain

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/evabo/wasteflow/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

type CreateInvoiceRequest struct {
	CustomerID         string
	CollectionDate     time.Time
	WasteQuantity      decimal.Decimal
	ServiceType        string
	AdditionalServices []string
	Notes              string
}

type TransitionRequest struct {
	InvoiceID    string
	TargetStatus string
}

type ListInvoiceRequest struct {
	PageToken string
	PageSize  int32
	Status    string
}

type ListInvoiceResponse struct {
	pagination.PageInfo
	Invoices []InvoiceWithCustomer `json:"invoices"`
}

// Service is the invoice lifecycle orchestrator: the only component with
// side effects. Everything it composes (rate table, amount calculator,
// numbering, state machine) is pure.
type Service interface {
	Create(context.Context, CreateInvoiceRequest) (Invoice, error)
	List(context.Context, ListInvoiceRequest) (ListInvoiceResponse, error)
	GetByID(ctx context.Context, id string) (InvoiceWithCustomer, error)
	Transition(context.Context, TransitionRequest) (Invoice, error)
	Stats(context.Context) (StatusTotals, error)
	RenderPDF(ctx context.Context, id string) (io.Reader, error)
}

// Notifier is the external notification collaborator. A send failure
// aborts the triggering transition and leaves the status unchanged.
type Notifier interface {
	SendInvoice(ctx context.Context, invoice Invoice, customerName, customerEmail string) error
}

var (
	ErrInvalidID             = errors.New("invalid_id")
	ErrInvalidCustomerID     = errors.New("invalid_customer_id")
	ErrInvalidQuantity       = errors.New("invalid_quantity")
	ErrInvalidServiceType    = errors.New("invalid_service_type")
	ErrInvalidStatus         = errors.New("invalid_status")
	ErrInvalidCollectionDate = errors.New("invalid_collection_date")
	ErrNotFound              = errors.New("not_found")
	ErrIllegalTransition     = errors.New("illegal_transition")
	ErrMissingCustomerEmail  = errors.New("missing_customer_email")
	ErrNotificationFailed    = errors.New("notification_failed")
	ErrStatusConflict        = errors.New("status_conflict")
)
