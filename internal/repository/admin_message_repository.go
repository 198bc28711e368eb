package repository

import (
	"context"

	"github.com/yukikurage/skillswap-api/internal/database"
	"github.com/yukikurage/skillswap-api/internal/models"
	"gorm.io/gorm"
)

// GormAdminMessageRepository is a GORM implementation of AdminMessageRepository
type GormAdminMessageRepository struct {
	db *gorm.DB
}

// NewAdminMessageRepository creates a new AdminMessageRepository
func NewAdminMessageRepository(db *gorm.DB) AdminMessageRepository {
	return &GormAdminMessageRepository{db: db}
}

// Create creates a new admin message
func (r *GormAdminMessageRepository) Create(ctx context.Context, message *models.AdminMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListActive lists active messages, newest first
func (r *GormAdminMessageRepository) ListActive(ctx context.Context) ([]models.AdminMessage, error) {
	var messages []models.AdminMessage
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Scopes(database.NewestFirst).
		Find(&messages).Error
	return messages, err
}
