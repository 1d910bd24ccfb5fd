package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is a dashboard account. PasswordHash holds an encoded argon2id
// hash, never the plaintext.
type AdminUser struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Email        string    `json:"email" db:"email" gorm:"type:text;not null;unique"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}
