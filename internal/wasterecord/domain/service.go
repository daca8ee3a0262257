package domain

import (
	"context"
	"errors"
	"time"

	"github.com/evabo/wasteflow/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

type ListWasteRecordRequest struct {
	PageToken  string
	PageSize   int32
	SupplierID string
	WasteType  string
	Status     string
}

type ListWasteRecordFilter struct {
	SupplierID string
	WasteType  string
	Status     string
}

type ListWasteRecordResponse struct {
	pagination.PageInfo
	Records []WasteRecord `json:"records"`
}

type CreateWasteRecordRequest struct {
	SupplierID string
	WasteType  string
	Quantity   decimal.Decimal
	Location   string
	RecordDate time.Time
}

type UpdateWasteRecordRequest struct {
	ID        string
	WasteType *string
	Quantity  *decimal.Decimal
	Location  *string
	Status    *string
}

type GetWasteRecordRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateWasteRecordRequest) (WasteRecord, error)
	List(context.Context, ListWasteRecordRequest) (ListWasteRecordResponse, error)
	GetByID(context.Context, GetWasteRecordRequest) (WasteRecord, error)
	Update(context.Context, UpdateWasteRecordRequest) (WasteRecord, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidWasteType  = errors.New("invalid_waste_type")
	ErrInvalidQuantity   = errors.New("invalid_quantity")
	ErrInvalidStatus     = errors.New("invalid_status")
	ErrInvalidRecordDate = errors.New("invalid_record_date")
	ErrInvalidID         = errors.New("invalid_id")
	ErrNotFound          = errors.New("not_found")
)
