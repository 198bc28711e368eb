package repository

import (
	"context"

	"github.com/yukikurage/skillswap-api/internal/database"
	"github.com/yukikurage/skillswap-api/internal/models"
	"gorm.io/gorm"
)

// GormSwapRepository is a GORM implementation of SwapRepository
type GormSwapRepository struct {
	db *gorm.DB
}

// NewSwapRepository creates a new SwapRepository
func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &GormSwapRepository{db: db}
}

// Create creates a new swap request
func (r *GormSwapRepository) Create(ctx context.Context, swap *models.SwapRequest) error {
	return r.db.WithContext(ctx).Create(swap).Error
}

// FindByID finds a swap request by ID
func (r *GormSwapRepository) FindByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&swap).Error; err != nil {
		return nil, err
	}
	return &swap, nil
}

// ListForUser lists requests where the user is requester or target, newest first
func (r *GormSwapRepository) ListForUser(ctx context.Context, userID string, status *models.SwapStatus) ([]models.SwapRequest, error) {
	query := r.db.WithContext(ctx).
		Where("(requester_id = ? OR target_id = ?)", userID, userID)

	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var swaps []models.SwapRequest
	if err := query.Scopes(database.NewestFirst).Find(&swaps).Error; err != nil {
		return nil, err
	}
	return swaps, nil
}

// UpdateStatus writes a new status and returns the updated request
func (r *GormSwapRepository) UpdateStatus(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error) {
	if err := r.db.WithContext(ctx).Model(&models.SwapRequest{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// DeletePending hard deletes the request if it is still pending
func (r *GormSwapRepository) DeletePending(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, models.SwapStatusPending).
		Delete(&models.SwapRequest{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Count counts requests, optionally restricted to the given statuses
func (r *GormSwapRepository) Count(ctx context.Context, statuses ...models.SwapStatus) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.SwapRequest{})
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var count int64
	err := query.Count(&count).Error
	return count, err
}
