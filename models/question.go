package models

import (
	"time"

	"github.com/google/uuid"
)

// Pertanyaan peserta pada halaman detail kursus.
type Question struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CourseID  uuid.UUID `gorm:"type:uuid;not null;index" json:"course_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Question  string    `gorm:"column:question;type:text;not null" json:"question"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Profile Profile  `gorm:"foreignKey:UserID;references:ID" json:"profile,omitempty"`
	Answers []Answer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE;" json:"answers"`
}
