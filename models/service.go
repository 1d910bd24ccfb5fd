package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IconFallback is rendered when a service names an icon outside the registry.
const IconFallback = "circle"

// knownIcons is the closed set of icon names the frontend can render.
// Resolution happens through IconOrFallback, never by reflecting over an
// external symbol table.
var knownIcons = map[string]struct{}{
	"code":     {},
	"server":   {},
	"shield":   {},
	"globe":    {},
	"database": {},
	"cloud":    {},
	"mobile":   {},
	"wrench":   {},
	"circle":   {},
}

// KnownIcon reports whether name is in the icon registry.
func KnownIcon(name string) bool {
	_, ok := knownIcons[name]
	return ok
}

// IconOrFallback resolves an icon name against the registry, substituting
// the fallback for unknown names.
func IconOrFallback(name string) string {
	if KnownIcon(name) {
		return name
	}
	return IconFallback
}

// Service represents a service offering listed on the site
type Service struct {
	ID          uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Icon        string                      `json:"icon" db:"icon" gorm:"type:text;not null"`
	Features    datatypes.JSONSlice[string] `json:"features" db:"features"`
	Featured    bool                        `json:"featured" db:"featured" gorm:"not null;default:false"`
	SortOrder   int                         `json:"sort_order" db:"sort_order" gorm:"not null;default:0"`
	CreatedAt   time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time                   `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP"`
}

// AfterFind normalizes list fields and icon names read from storage.
func (s *Service) AfterFind(_ *gorm.DB) error {
	if s.Features == nil {
		s.Features = datatypes.JSONSlice[string]{}
	}
	s.Icon = IconOrFallback(s.Icon)
	return nil
}
