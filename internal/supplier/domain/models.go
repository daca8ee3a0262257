package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type SupplierStatus string

const (
	StatusActive   SupplierStatus = "active"
	StatusInactive SupplierStatus = "inactive"
)

// Supplier is a waste-collection partner the business disburses payments to.
type Supplier struct {
	ID            snowflake.ID                `gorm:"primaryKey" json:"id"`
	Name          string                      `gorm:"not null" json:"name"`
	ContactPerson string                      `gorm:"column:contact_person;not null" json:"contact_person"`
	Email         string                      `gorm:"not null" json:"email"`
	Phone         string                      `gorm:"" json:"phone,omitempty"`
	Status        SupplierStatus              `gorm:"type:text;not null;default:'active'" json:"status"`
	WasteTypes    datatypes.JSONSlice[string] `gorm:"not null" json:"waste_types"`
	Location      string                      `gorm:"" json:"location,omitempty"`
	CreatedAt     time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Supplier) TableName() string { return "suppliers" }
