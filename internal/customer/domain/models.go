package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// CustomerType drives the rate table lookup at invoice creation.
type CustomerType string

const (
	TypeApartment       CustomerType = "apartment"
	TypeCorporateOffice CustomerType = "corporate_office"
	TypeEstate          CustomerType = "estate"
)

type CustomerStatus string

const (
	StatusActive   CustomerStatus = "active"
	StatusInactive CustomerStatus = "inactive"
)

type Customer struct {
	ID            snowflake.ID   `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	ContactPerson string         `gorm:"column:contact_person;not null" json:"contact_person"`
	Email         string         `gorm:"not null" json:"email"`
	Phone         string         `gorm:"" json:"phone,omitempty"`
	Status        CustomerStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	Type          CustomerType   `gorm:"type:text;not null" json:"type"`
	Location      string         `gorm:"" json:"location,omitempty"`
	CreatedAt     time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }
