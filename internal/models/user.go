package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Email                 string     `gorm:"uniqueIndex;not null" json:"email"`
	Password              string     `gorm:"not null" json:"-"`
	IsActive              bool       `gorm:"default:true" json:"is_active"`
	EmailConfirmedAt      *time.Time `json:"email_confirmed_at,omitempty"`
	ConfirmationTokenHash string     `gorm:"size:64" json:"-"`
	RefreshTokenHash      string     `gorm:"size:64" json:"-"`
	LastLoginAt           *time.Time `json:"last_login_at,omitempty"`

	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}

// EmailConfirmed reports whether the user has confirmed their email address.
// Login is refused until confirmation, mirroring the hosted-auth behavior the
// service replaced.
func (u *User) EmailConfirmed() bool {
	return u.EmailConfirmedAt != nil
}
