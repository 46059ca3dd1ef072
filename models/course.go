package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Slug        string    `gorm:"size:255;uniqueIndex;not null" json:"slug"` // slug untuk URL, tanpa spasi
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	PDFURL      *string   `gorm:"type:text" json:"pdf_url,omitempty"`   // materi kursus di storage
	ImageURL    *string   `gorm:"type:text" json:"image_url,omitempty"` // thumbnail 400x225
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []Question `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;" json:"questions,omitempty"`
}
