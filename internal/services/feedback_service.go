package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yukikurage/skillswap-api/internal/constants"
	"github.com/yukikurage/skillswap-api/internal/lock"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/repository"
	"gorm.io/gorm"
)

// FeedbackService records reviews and keeps each reviewee's rating equal to
// the mean of the feedback they received.
type FeedbackService struct {
	feedbackRepo repository.FeedbackRepository
	userRepo     repository.UserRepository
	swapRepo     repository.SwapRepository
	locker       lock.Locker
	log          zerolog.Logger
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	userRepo repository.UserRepository,
	swapRepo repository.SwapRepository,
	locker lock.Locker,
	log zerolog.Logger,
) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
		swapRepo:     swapRepo,
		locker:       locker,
		log:          log.With().Str("service", "feedback").Logger(),
	}
}

// RecordFeedbackInput represents a review of one swap participant by another.
type RecordFeedbackInput struct {
	SwapRequestID string
	ReviewerID    string
	RevieweeID    string
	Rating        int
	Comment       string
}

// Record persists the feedback and recomputes the reviewee's rating from the
// full feedback set. Records for the same reviewee are serialized so that
// each recompute observes every earlier write.
func (s *FeedbackService) Record(ctx context.Context, input RecordFeedbackInput) (*models.Feedback, error) {
	if input.Rating < constants.MinRating || input.Rating > constants.MaxRating {
		return nil, ErrInvalidRating
	}

	if _, err := findUser(ctx, s.userRepo, input.RevieweeID); err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, "rating:"+input.RevieweeID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock reviewee rating: %w", err)
	}
	defer unlock()

	feedback := &models.Feedback{
		SwapRequestID: input.SwapRequestID,
		ReviewerID:    input.ReviewerID,
		RevieweeID:    input.RevieweeID,
		Rating:        input.Rating,
		Comment:       strings.TrimSpace(input.Comment),
	}

	rating, err := s.feedbackRepo.CreateAndRecomputeRating(ctx, feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to record feedback: %w", err)
	}

	s.log.Info().
		Str("swap_id", input.SwapRequestID).
		Str("reviewer_id", input.ReviewerID).
		Str("reviewee_id", input.RevieweeID).
		Int("score", input.Rating).
		Float64("rating", rating).
		Msg("feedback recorded")

	return feedback, nil
}

// Submit records feedback left directly by a participant of an existing swap
// about the other participant.
func (s *FeedbackService) Submit(ctx context.Context, input RecordFeedbackInput) (*models.Feedback, error) {
	swap, err := s.swapRepo.FindByID(ctx, input.SwapRequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwapNotFound
		}
		return nil, fmt.Errorf("failed to find swap request: %w", err)
	}

	if !swap.IsParticipant(input.ReviewerID) {
		return nil, ErrReviewerNotParticipant
	}
	if input.RevieweeID != swap.Counterpart(input.ReviewerID) {
		return nil, ErrRevieweeNotCounterpart
	}

	return s.Record(ctx, input)
}

// ListFor returns feedback received by the user, newest first.
func (s *FeedbackService) ListFor(ctx context.Context, userID string) ([]models.Feedback, error) {
	feedback, err := s.feedbackRepo.ListByReviewee(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedback, nil
}
