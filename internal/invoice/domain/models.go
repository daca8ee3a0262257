// Package domain contains the invoice model, its lifecycle state machine,
// and the typed errors surfaced by the lifecycle orchestrator.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	customerdomain "github.com/evabo/wasteflow/internal/customer/domain"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Status represents invoice lifecycle states.
type Status string

const (
	StatusDraft  Status = "draft"
	StatusSaved  Status = "saved"
	StatusSent   Status = "sent"
	StatusUnpaid Status = "unpaid"
	StatusPaid   Status = "paid"
)

// ParseStatus returns the status for a raw string, rejecting values
// outside the five-state enumeration.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusDraft, StatusSaved, StatusSent, StatusUnpaid, StatusPaid:
		return Status(raw), true
	default:
		return "", false
	}
}

// Invoice represents one billable waste-collection engagement.
//
// Amount is computed exactly once at creation; status is the only mutable
// field after that.
type Invoice struct {
	ID                 snowflake.ID                `gorm:"primaryKey" json:"id"`
	CustomerID         snowflake.ID                `gorm:"not null;index" json:"customer_id"`
	Amount             decimal.Decimal             `gorm:"type:numeric(12,2);not null" json:"amount"`
	Status             Status                      `gorm:"type:text;not null;default:'draft'" json:"status"`
	InvoiceDate        time.Time                   `gorm:"not null" json:"invoice_date"`
	DueDate            time.Time                   `gorm:"not null" json:"due_date"`
	CollectionDate     time.Time                   `gorm:"not null" json:"collection_date"`
	WasteQuantity      decimal.Decimal             `gorm:"type:numeric(12,3);not null" json:"waste_quantity"`
	ServiceType        string                      `gorm:"type:text;not null" json:"service_type"`
	AdditionalServices datatypes.JSONSlice[string] `gorm:"not null" json:"additional_services"`
	Notes              string                      `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt          time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }

// InvoiceWithCustomer pairs an invoice with its customer for rendering.
type InvoiceWithCustomer struct {
	Invoice
	Customer customerdomain.Customer `json:"customer"`
}
