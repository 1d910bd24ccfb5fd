package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BlogPost represents a complete blog post with metadata.
// Published and PublishedAt are coupled: PublishedAt is non-nil exactly when
// Published is true. Both are always written together through PublishState.
type BlogPost struct {
	ID          uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string                      `json:"slug" db:"slug" gorm:"type:text;not null;unique"`
	Excerpt     string                      `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	Content     string                      `json:"content" db:"content" gorm:"type:text;not null"`
	CoverURL    *string                     `json:"cover_url,omitempty" db:"cover_url" gorm:"type:text"`
	Tags        datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	Published   bool                        `json:"published" db:"published" gorm:"not null;default:false"`
	PublishedAt *time.Time                  `json:"published_at" db:"published_at" gorm:"type:timestamptz"`
	ReadMinutes int                         `json:"read_minutes" db:"read_minutes" gorm:"not null;default:0"`
	CreatedAt   time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time                   `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

// AfterFind normalizes list fields so they marshal as [] rather than null.
func (p *BlogPost) AfterFind(_ *gorm.DB) error {
	if p.Tags == nil {
		p.Tags = datatypes.JSONSlice[string]{}
	}
	return nil
}
