package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	gorm.Model
	Name                string    `json:"name" gorm:"default:''"`
	Email               string    `json:"email" gorm:"unique;not null"`
	Mobile              string    `json:"mobile" gorm:"default:''"`
	Role                string    `json:"role" gorm:"default:'USER'"` // USER or ADMIN
	Password            string    `json:"password,omitempty" gorm:"not null"`
	LastLogin           time.Time `json:"last_login" gorm:"default:NULL"`
	FailedLoginAttempts int       `json:"failed_login_attempts" gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	IsBlocked           bool       `json:"is_blocked" gorm:"default:false"`
	BlockedUntil        *time.Time `json:"blocked_until"`
	IsDeleted           bool       `json:"is_deleted" gorm:"default:false"`
}

// IsAdmin reports whether the user carries the elevated role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
