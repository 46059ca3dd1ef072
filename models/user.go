package models

import (
	"time"

	"github.com/google/uuid"
)

// Akun autentikasi. Data tampilan (nama, role, avatar) ada di Profile
// dengan ID yang sama.
type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email            string     `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password         string     `gorm:"type:text;not null" json:"-"`
	ConfirmToken     *string    `gorm:"size:64;index" json:"-"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Profile Profile `gorm:"foreignKey:ID;references:ID" json:"profile,omitempty"`
}

func (u *User) IsConfirmed() bool {
	return u.EmailConfirmedAt != nil
}
