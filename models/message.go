package models

import (
	"time"

	"github.com/google/uuid"
)

// Message represents a contact-form submission. Rows are written once from
// the public form; the admin only flips the read flag or deletes.
type Message struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Body      string    `json:"body" db:"body" gorm:"type:text;not null"`
	IsRead    bool      `json:"is_read" db:"is_read" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}
