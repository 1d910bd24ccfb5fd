package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Certification represents a professional certification or credential
type Certification struct {
	ID            uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name          string                      `json:"name" db:"name" gorm:"type:text;not null"`
	Issuer        string                      `json:"issuer" db:"issuer" gorm:"type:text;not null"`
	Date          string                      `json:"date" db:"date" gorm:"type:text;not null"`
	ExpiryDate    *string                     `json:"expiry_date,omitempty" db:"expiry_date" gorm:"type:text"`
	CredentialID  *string                     `json:"credential_id,omitempty" db:"credential_id" gorm:"type:text"`
	CredentialURL *string                     `json:"credential_url,omitempty" db:"credential_url" gorm:"type:text"`
	BadgeURL      *string                     `json:"badge_url,omitempty" db:"badge_url" gorm:"type:text"`
	SkillTags     datatypes.JSONSlice[string] `json:"skill_tags" db:"skill_tags"`
	Description   *string                     `json:"description,omitempty" db:"description" gorm:"type:text"`
	Featured      bool                        `json:"featured" db:"featured" gorm:"not null;default:false"`
	SortOrder     int                         `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
	CreatedAt     time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time                   `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

// AfterFind normalizes list fields so they marshal as [] rather than null.
func (c *Certification) AfterFind(_ *gorm.DB) error {
	if c.SkillTags == nil {
		c.SkillTags = datatypes.JSONSlice[string]{}
	}
	return nil
}
