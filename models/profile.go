package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin" // Pengelola konten & back-office
	RoleUser  UserRole = "user"  // Peserta kursus
)

// Profil publik pengguna, satu baris per akun (ID = users.ID).
type Profile struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName   string     `gorm:"size:150;not null" json:"full_name"`
	Role       UserRole   `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	AvatarURL  *string    `gorm:"type:text" json:"avatar_url,omitempty"`
	Phone      *string    `gorm:"size:30" json:"phone,omitempty"`
	LastActive *time.Time `json:"last_active,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
