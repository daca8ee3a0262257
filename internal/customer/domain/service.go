package domain

import (
	"context"
	"errors"

	"github.com/evabo/wasteflow/pkg/db/pagination"
)

type ListCustomerRequest struct {
	PageToken string
	PageSize  int32
	Name      string
	Email     string
	Type      string
	Status    string
}

type ListCustomerFilter struct {
	Name   string
	Email  string
	Type   string
	Status string
}

type ListCustomerResponse struct {
	pagination.PageInfo
	Customers []Customer `json:"customers"`
}

type CreateCustomerRequest struct {
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Type          string
	Location      string
}

type UpdateCustomerRequest struct {
	ID            string
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Status        *string
	Type          *string
	Location      *string
}

type GetCustomerRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (Customer, error)
	List(context.Context, ListCustomerRequest) (ListCustomerResponse, error)
	GetByID(context.Context, GetCustomerRequest) (Customer, error)
	Update(context.Context, UpdateCustomerRequest) (Customer, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidEmail  = errors.New("invalid_email")
	ErrInvalidType   = errors.New("invalid_type")
	ErrInvalidStatus = errors.New("invalid_status")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)
