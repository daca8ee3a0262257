package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type RecordStatus string

const (
	StatusPending   RecordStatus = "pending"
	StatusCollected RecordStatus = "collected"
	StatusProcessed RecordStatus = "processed"
)

// WasteRecord logs a quantity of waste handed over by a supplier.
type WasteRecord struct {
	ID         snowflake.ID    `gorm:"primaryKey" json:"id"`
	SupplierID snowflake.ID    `gorm:"not null;index" json:"supplier_id"`
	WasteType  string          `gorm:"type:text;not null" json:"waste_type"`
	Quantity   decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"quantity"`
	Location   string          `gorm:"" json:"location,omitempty"`
	Status     RecordStatus    `gorm:"type:text;not null;default:'pending'" json:"status"`
	RecordDate time.Time       `gorm:"not null;index" json:"record_date"`
	CreatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (WasteRecord) TableName() string { return "waste_records" }
