package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// PaymentType distinguishes money coming in from customers (collected)
// from money going out to suppliers (disbursed).
type PaymentType string

const (
	TypeCollected PaymentType = "collected"
	TypeDisbursed PaymentType = "disbursed"
)

type PaymentStatus string

const (
	StatusCompleted PaymentStatus = "completed"
	StatusPending   PaymentStatus = "pending"
)

type Payment struct {
	ID          snowflake.ID    `gorm:"primaryKey" json:"id"`
	CustomerID  snowflake.ID    `gorm:"index" json:"customer_id,omitempty"`
	SupplierID  snowflake.ID    `gorm:"index" json:"supplier_id,omitempty"`
	InvoiceID   snowflake.ID    `gorm:"index" json:"invoice_id,omitempty"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Type        PaymentType     `gorm:"type:text;not null" json:"type"`
	Status      PaymentStatus   `gorm:"type:text;not null;default:'pending'" json:"status"`
	Method      string          `gorm:"type:text" json:"method,omitempty"`
	Reference   string          `gorm:"type:text" json:"reference,omitempty"`
	PaymentDate time.Time       `gorm:"not null;index" json:"payment_date"`
	CreatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Payment) TableName() string { return "payments" }
