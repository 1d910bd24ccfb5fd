package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns projects ordered by sort_order ascending, creation order
// breaking ties.
func (r *ProjectRepo) FindAll(filter ListFilter) ([]*models.Project, error) {
	query := r.db.Order("sort_order ASC, created_at ASC")
	if filter.FeaturedOnly {
		query = query.Where("featured = ?", true)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var projects []*models.Project
	err := query.Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no row exists.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update applies only the supplied fields to an existing project.
func (r *ProjectRepo) Update(id uuid.UUID, fields map[string]any) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
