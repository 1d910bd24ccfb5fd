package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProfileID is the fixed identifier of the singleton profile row. The same
// upsert serves the first write and every later edit.
var ProfileID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// SocialLink is one labeled external link on the profile.
type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Profile represents the site owner's public profile
type Profile struct {
	ID          uuid.UUID                        `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string                           `json:"name" db:"name" gorm:"type:text;not null"`
	Title       string                           `json:"title" db:"title" gorm:"type:text;not null"`
	Bio         string                           `json:"bio" db:"bio" gorm:"type:text;not null"`
	Email       string                           `json:"email" db:"email" gorm:"type:text;not null"`
	Phone       string                           `json:"phone" db:"phone" gorm:"type:text"`
	Location    string                           `json:"location" db:"location" gorm:"type:text"`
	SocialLinks datatypes.JSONSlice[SocialLink]  `json:"social_links" db:"social_links"`
	AvatarURL   string                           `json:"avatar_url" db:"avatar_url" gorm:"type:text"`
	ResumeURL   string                           `json:"resume_url" db:"resume_url" gorm:"type:text"`
	UpdatedAt   time.Time                        `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

// AfterFind normalizes list fields so they marshal as [] rather than null.
func (p *Profile) AfterFind(_ *gorm.DB) error {
	if p.SocialLinks == nil {
		p.SocialLinks = datatypes.JSONSlice[SocialLink]{}
	}
	return nil
}
