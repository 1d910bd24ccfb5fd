package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type CertificationRepo struct {
	db *gorm.DB
}

func NewCertificationRepo(db *gorm.DB) *CertificationRepo {
	return &CertificationRepo{db}
}

// FindAll returns certifications ordered by sort_order ascending, creation
// order breaking ties.
func (r *CertificationRepo) FindAll(filter ListFilter) ([]*models.Certification, error) {
	query := r.db.Order("sort_order ASC, created_at ASC")
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var certs []*models.Certification
	err := query.Find(&certs).Error
	return certs, err
}

// FindByID returns a certification by its ID, or nil when no row exists.
func (r *CertificationRepo) FindByID(id uuid.UUID) (*models.Certification, error) {
	var cert models.Certification
	err := r.db.First(&cert, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

// Add inserts a new certification into the database
func (r *CertificationRepo) Add(cert *models.Certification) error {
	return r.db.Create(cert).Error
}

// Update applies only the supplied fields to an existing certification.
func (r *CertificationRepo) Update(id uuid.UUID, fields map[string]any) error {
	return r.db.Model(&models.Certification{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a certification from the database by id
func (r *CertificationRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Certification{}, "id = ?", id).Error
}
