package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Category classifies a project. The set is closed; writes reject anything
// outside it.
type Category string

const (
	CategoryFullstack Category = "fullstack"
	CategoryFrontend  Category = "frontend"
	CategoryBackend   Category = "backend"
	CategorySecurity  Category = "security"
	CategoryMobile    Category = "mobile"
	CategoryOther     Category = "other"
)

// ValidCategory reports whether c is one of the known project categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryFullstack, CategoryFrontend, CategoryBackend,
		CategorySecurity, CategoryMobile, CategoryOther:
		return true
	}
	return false
}

// Project represents a portfolio project with metadata
type Project struct {
	ID              uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title           string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string                      `json:"description" db:"description" gorm:"type:text;not null"`
	LongDescription *string                     `json:"long_description,omitempty" db:"long_description" gorm:"type:text"`
	ImageURL        string                      `json:"image_url" db:"image_url" gorm:"type:text"`
	TechTags        datatypes.JSONSlice[string] `json:"tech_tags" db:"tech_tags"`
	Category        Category                    `json:"category" db:"category" gorm:"type:text;not null"`
	DemoURL         *string                     `json:"demo_url,omitempty" db:"demo_url" gorm:"type:text"`
	SourceURL       *string                     `json:"source_url,omitempty" db:"source_url" gorm:"type:text"`
	Featured        bool                        `json:"featured" db:"featured" gorm:"not null;default:false"`
	Date            *string                     `json:"date,omitempty" db:"date" gorm:"type:text"`
	SortOrder       int                         `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
	CreatedAt       time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt       time.Time                   `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

// AfterFind normalizes list fields so they marshal as [] rather than null.
func (p *Project) AfterFind(_ *gorm.DB) error {
	if p.TechTags == nil {
		p.TechTags = datatypes.JSONSlice[string]{}
	}
	return nil
}
