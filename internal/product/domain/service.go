package domain

import (
	"context"
	"errors"

	"github.com/evabo/wasteflow/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

type ListProductRequest struct {
	PageToken  string
	PageSize   int32
	Name       string
	CustomerID string
}

type ListProductFilter struct {
	Name       string
	CustomerID string
}

type ListProductResponse struct {
	pagination.PageInfo
	Products []Product `json:"products"`
}

type CreateProductRequest struct {
	CustomerID  string
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int64
}

type UpdateProductRequest struct {
	ID          string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int64
}

type GetProductRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateProductRequest) (Product, error)
	List(context.Context, ListProductRequest) (ListProductResponse, error)
	GetByID(context.Context, GetProductRequest) (Product, error)
	Update(context.Context, UpdateProductRequest) (Product, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidPrice    = errors.New("invalid_price")
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
