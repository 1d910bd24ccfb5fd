package database

import (
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type Database struct {
	profileRepo       *ProfileRepo
	projectRepo       *ProjectRepo
	certificationRepo *CertificationRepo
	blogPostRepo      *BlogPostRepo
	serviceRepo       *ServiceRepo
	messageRepo       *MessageRepo
	adminUserRepo     *AdminUserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo:       NewProfileRepo(db),
		projectRepo:       NewProjectRepo(db),
		certificationRepo: NewCertificationRepo(db),
		blogPostRepo:      NewBlogPostRepo(db),
		serviceRepo:       NewServiceRepo(db),
		messageRepo:       NewMessageRepo(db),
		adminUserRepo:     NewAdminUserRepo(db),
	}
}

// Migrate creates or updates the schema for every entity table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Project{},
		&models.Certification{},
		&models.BlogPost{},
		&models.Service{},
		&models.Message{},
		&models.AdminUser{},
	)
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CertificationRepo() *CertificationRepo {
	return d.certificationRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) ServiceRepo() *ServiceRepo {
	return d.serviceRepo
}

func (d Database) MessageRepo() *MessageRepo {
	return d.messageRepo
}

func (d Database) AdminUserRepo() *AdminUserRepo {
	return d.adminUserRepo
}
