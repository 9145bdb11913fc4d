package model

import (
	"time"
)

// Notification types.
const (
	NotificationTypeApplication = "application"
	NotificationTypeTest        = "test"
	NotificationTypeSystem      = "system"
)

type Notification struct {
	ID      uint   `gorm:"primarykey" json:"id"`
	UserID  uint   `json:"user_id" gorm:"not null;index"`
	Type    string `json:"type" gorm:"not null"`
	Title   string `json:"title" gorm:"not null"`
	Message string `json:"message" gorm:"type:text;not null"`
	Link    string `json:"link,omitempty"`
	IsRead  bool   `json:"is_read" gorm:"default:false;index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
