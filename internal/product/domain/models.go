package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Product is a sellable item or service offered to a customer, priced
// independently of the collection billing rates.
type Product struct {
	ID          snowflake.ID    `gorm:"primaryKey" json:"id"`
	CustomerID  snowflake.ID    `gorm:"index" json:"customer_id,omitempty"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity    int64           `gorm:"not null;default:0" json:"quantity"`
	CreatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }
