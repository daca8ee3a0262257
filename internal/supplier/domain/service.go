package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/evabo/wasteflow/pkg/db/pagination"
)

type ListSupplierRequest struct {
	PageToken string
	PageSize  int32
	Name      string
	Email     string
	Status    string
}

type ListSupplierFilter struct {
	Name   string
	Email  string
	Status string
}

type ListSupplierResponse struct {
	pagination.PageInfo
	Suppliers []Supplier `json:"suppliers"`
}

type CreateSupplierRequest struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	WasteTypes    []string
	Location      string
}

type UpdateSupplierRequest struct {
	ID            string
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Status        *string
	WasteTypes    *[]string
	Location      *string
}

type GetSupplierRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateSupplierRequest) (Supplier, error)
	List(context.Context, ListSupplierRequest) (ListSupplierResponse, error)
	GetByID(context.Context, GetSupplierRequest) (Supplier, error)
	Update(context.Context, UpdateSupplierRequest) (Supplier, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidEmail  = errors.New("invalid_email")
	ErrInvalidStatus = errors.New("invalid_status")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
	ErrDuplicate     = errors.New("duplicate_supplier")
)

// DuplicateError reports which fields collide with an existing supplier.
// It unwraps to ErrDuplicate so callers can match it with errors.Is.
type DuplicateError struct {
	Fields []string
}

func (e *DuplicateError) Error() string {
	return "duplicate_supplier: " + strings.Join(e.Fields, ", ")
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }
