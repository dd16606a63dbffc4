package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account managed by the identity layer. The email
// doubles as the username. LockoutUntil and AccessFailedCount carry the
// invalid-attempt lockout state.
type User struct {
	ID                string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email             string     `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	PasswordHash      string     `gorm:"type:varchar(255)"` // No json tag for security
	EmailConfirmed    bool       `json:"emailConfirmed"`
	AccessFailedCount int        `json:"-"`
	LockoutUntil      *time.Time `json:"-"`
	gorm.Model                   // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
