package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/portfolio-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// Get returns the singleton profile row, or nil before the first write.
func (r *ProfileRepo) Get() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", models.ProfileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert writes the profile under its fixed identifier. The same call
// serves the first write and every subsequent edit.
func (r *ProfileRepo) Upsert(profile *models.Profile) error {
	profile.ID = models.ProfileID
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(profile).Error
}
