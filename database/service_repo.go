package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type ServiceRepo struct {
	db *gorm.DB
}

func NewServiceRepo(db *gorm.DB) *ServiceRepo {
	return &ServiceRepo{db}
}

// FindAll returns services ordered by sort_order ascending, creation order
// breaking ties.
func (r *ServiceRepo) FindAll(filter ListFilter) ([]*models.Service, error) {
	query := r.db.Order("sort_order ASC, created_at ASC")
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var services []*models.Service
	err := query.Find(&services).Error
	return services, err
}

// FindByID returns a service by its ID, or nil when no row exists.
func (r *ServiceRepo) FindByID(id uuid.UUID) (*models.Service, error) {
	var service models.Service
	err := r.db.First(&service, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// Add inserts a new service into the database
func (r *ServiceRepo) Add(service *models.Service) error {
	return r.db.Create(service).Error
}

// Update applies only the supplied fields to an existing service.
func (r *ServiceRepo) Update(id uuid.UUID, fields map[string]any) error {
	return r.db.Model(&models.Service{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a service from the database by id
func (r *ServiceRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Service{}, "id = ?", id).Error
}
