package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type MessageStatus string

const (
	StatusUnread MessageStatus = "unread"
	StatusRead   MessageStatus = "read"
)

// Message is an internal note between back-office users.
type Message struct {
	ID        snowflake.ID  `gorm:"primaryKey" json:"id"`
	Sender    string        `gorm:"not null" json:"sender"`
	Recipient string        `gorm:"not null;index" json:"recipient"`
	Subject   string        `gorm:"not null" json:"subject"`
	Content   string        `gorm:"type:text;not null" json:"content"`
	Status    MessageStatus `gorm:"type:text;not null;default:'unread'" json:"status"`
	CreatedAt time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Message) TableName() string { return "messages" }
