package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/models"
)

type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db}
}

// FindAll returns contact messages newest first.
func (r *MessageRepo) FindAll() ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// FindByID returns a message by its ID, or nil when no row exists.
func (r *MessageRepo) FindByID(id uuid.UUID) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Add inserts a new contact message into the database
func (r *MessageRepo) Add(message *models.Message) error {
	return r.db.Create(message).Error
}

// MarkRead flips the read flag on a message.
func (r *MessageRepo) MarkRead(id uuid.UUID, read bool) error {
	return r.db.Model(&models.Message{}).Where("id = ?", id).Update("is_read", read).Error
}

// Delete removes a message from the database by id
func (r *MessageRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Message{}, "id = ?", id).Error
}
