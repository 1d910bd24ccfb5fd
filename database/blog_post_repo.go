package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns blog posts newest-published first. Drafts sort after
// published posts by creation time.
func (r *BlogPostRepo) FindAll(filter PostFilter) ([]*models.BlogPost, error) {
	query := r.db.Order("published_at DESC NULLS LAST, created_at DESC")
	if filter.PublishedOnly {
		query = query.Where("published = ?", true)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var posts []*models.BlogPost
	err := query.Find(&posts).Error
	return posts, err
}

// FindByID returns a blog post by its ID, or nil when no row exists.
func (r *BlogPostRepo) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindBySlug returns a blog post by its unique slug, or nil when no row exists.
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new blog post into the database
func (r *BlogPostRepo) Add(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// Update applies only the supplied fields to an existing blog post.
func (r *BlogPostRepo) Update(id uuid.UUID, fields map[string]any) error {
	return r.db.Model(&models.BlogPost{}).Where("id = ?", id).Updates(fields).Error
}

// TogglePublish writes the publish flag and timestamp in a single statement
// so no reader can observe one without the other.
func (r *BlogPostRepo) TogglePublish(id uuid.UUID, published bool, now time.Time) error {
	flag, at := models.PublishState(published, now)
	return r.db.Model(&models.BlogPost{}).Where("id = ?", id).Updates(map[string]any{
		"published":    flag,
		"published_at": at,
		"updated_at":   now.UTC(),
	}).Error
}

// Delete removes a blog post from the database by id
func (r *BlogPostRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BlogPost{}, "id = ?", id).Error
}
