package models

import "gorm.io/gorm"

// Notification types.
const (
	NotifySuccess = "success"
	NotifyWarning = "warning"
	NotifyInfo    = "info"
	NotifyDanger  = "danger"
)

// ValidNotificationTypes is the accepted set for admin-created notifications.
var ValidNotificationTypes = map[string]bool{
	NotifySuccess: true,
	NotifyWarning: true,
	NotifyInfo:    true,
	NotifyDanger:  true,
}

type Notification struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"index;not null"`
	Title   string `json:"title" gorm:"not null"`
	Message string `json:"message" gorm:"type:text"`
	Type    string `json:"type" gorm:"default:'info'"`
	IsRead  bool   `json:"is_read" gorm:"default:false"`
}
