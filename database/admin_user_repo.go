package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type AdminUserRepo struct {
	db *gorm.DB
}

func NewAdminUserRepo(db *gorm.DB) *AdminUserRepo {
	return &AdminUserRepo{db}
}

// FindByEmail returns the admin account for an email, or nil when none exists.
func (r *AdminUserRepo) FindByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new admin account into the database
func (r *AdminUserRepo) Add(user *models.AdminUser) error {
	return r.db.Create(user).Error
}
