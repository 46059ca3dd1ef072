package models

import (
	"time"

	"github.com/google/uuid"
)

// Jawaban admin atas sebuah pertanyaan. Ditampilkan urut naik
// berdasarkan created_at.
type Answer struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Answer     string    `gorm:"column:answer;type:text;not null" json:"answer"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	Profile Profile `gorm:"foreignKey:UserID;references:ID" json:"profile,omitempty"`
}
