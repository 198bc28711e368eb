package repository

import (
	"context"
	"fmt"

	"github.com/yukikurage/skillswap-api/internal/database"
	"github.com/yukikurage/skillswap-api/internal/models"
	"gorm.io/gorm"
)

// GormFeedbackRepository is a GORM implementation of FeedbackRepository
type GormFeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &GormFeedbackRepository{db: db}
}

// CreateAndRecomputeRating stores the feedback, re-reads every rating the
// reviewee has received and overwrites users.rating with their mean.
func (r *GormFeedbackRepository) CreateAndRecomputeRating(ctx context.Context, feedback *models.Feedback) (float64, error) {
	var rating float64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(feedback).Error; err != nil {
			return fmt.Errorf("create feedback: %w", err)
		}

		var ratings []int
		if err := tx.Model(&models.Feedback{}).
			Where("reviewee_id = ?", feedback.RevieweeID).
			Pluck("rating", &ratings).Error; err != nil {
			return fmt.Errorf("load ratings: %w", err)
		}

		rating = models.AverageRating(ratings)

		if err := tx.Model(&models.User{}).
			Where("id = ?", feedback.RevieweeID).
			Update("rating", rating).Error; err != nil {
			return fmt.Errorf("update rating: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return rating, nil
}

// ListByReviewee lists feedback received by a user, newest first
func (r *GormFeedbackRepository) ListByReviewee(ctx context.Context, revieweeID string) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := r.db.WithContext(ctx).
		Where("reviewee_id = ?", revieweeID).
		Scopes(database.NewestFirst).
		Find(&feedback).Error
	return feedback, err
}
