package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yukikurage/skillswap-api/internal/constants"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/repository"
	"gorm.io/gorm"
)

// SwapDirection tags a request relative to the user looking at it.
type SwapDirection string

const (
	SwapIncoming SwapDirection = "incoming"
	SwapOutgoing SwapDirection = "outgoing"
)

// SwapService drives the swap request lifecycle.
type SwapService struct {
	swapRepo repository.SwapRepository
	userRepo repository.UserRepository
	feedback *FeedbackService
	log      zerolog.Logger
}

// NewSwapService creates a new SwapService.
func NewSwapService(swapRepo repository.SwapRepository, userRepo repository.UserRepository, feedback *FeedbackService, log zerolog.Logger) *SwapService {
	return &SwapService{
		swapRepo: swapRepo,
		userRepo: userRepo,
		feedback: feedback,
		log:      log.With().Str("service", "swap").Logger(),
	}
}

// CreateSwapInput represents input for creating a swap request
type CreateSwapInput struct {
	RequesterID  string
	TargetID     string
	SkillOffered string
	SkillWanted  string
	Message      string
}

// TransitionInput represents a status change requested by one participant.
// Rating and Feedback only matter when Status is completed.
type TransitionInput struct {
	SwapID   string
	ActorID  string
	Status   models.SwapStatus
	Rating   *int
	Feedback string
}

// SwapView is a swap request tagged with its direction for the viewer.
type SwapView struct {
	models.SwapRequest
	Type SwapDirection
}

// Create opens a pending request from the requester to the target.
func (s *SwapService) Create(ctx context.Context, input CreateSwapInput) (*models.SwapRequest, error) {
	skillOffered := strings.TrimSpace(input.SkillOffered)
	skillWanted := strings.TrimSpace(input.SkillWanted)
	if skillOffered == "" || skillWanted == "" {
		return nil, ErrSkillsRequired
	}
	if input.RequesterID == input.TargetID {
		return nil, ErrSelfSwap
	}

	requester, err := findUser(ctx, s.userRepo, input.RequesterID)
	if err != nil {
		return nil, err
	}
	target, err := findUser(ctx, s.userRepo, input.TargetID)
	if err != nil {
		return nil, err
	}

	swap := &models.SwapRequest{
		RequesterID:   requester.ID,
		TargetID:      target.ID,
		RequesterName: requester.Name,
		TargetName:    target.Name,
		SkillOffered:  skillOffered,
		SkillWanted:   skillWanted,
		Message:       strings.TrimSpace(input.Message),
		Status:        models.SwapStatusPending,
	}

	if err := s.swapRepo.Create(ctx, swap); err != nil {
		return nil, fmt.Errorf("failed to create swap request: %w", err)
	}

	s.log.Info().Str("swap_id", swap.ID).Str("requester_id", requester.ID).Str("target_id", target.ID).Msg("swap requested")
	return swap, nil
}

// Get returns a request visible to one of its participants.
func (s *SwapService) Get(ctx context.Context, swapID, actorID string) (*models.SwapRequest, error) {
	swap, err := s.find(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if !swap.IsParticipant(actorID) {
		return nil, ErrNotSwapParticipant
	}
	return swap, nil
}

// Transition moves a request to a new status on behalf of a participant.
//
// Any participant may set any non-pending status; the order of statuses is not
// enforced. Completing with a rating records feedback about the other
// participant and increments the acting user's completed swap counter. The
// counterpart's counter is left as is.
func (s *SwapService) Transition(ctx context.Context, input TransitionInput) (*models.SwapRequest, error) {
	if !input.Status.IsTransitionTarget() {
		return nil, ErrInvalidSwapStatus
	}

	swap, err := s.find(ctx, input.SwapID)
	if err != nil {
		return nil, err
	}
	if !swap.IsParticipant(input.ActorID) {
		return nil, ErrNotSwapParticipant
	}

	rateOnComplete := input.Status == models.SwapStatusCompleted && input.Rating != nil
	if rateOnComplete {
		if *input.Rating < constants.MinRating || *input.Rating > constants.MaxRating {
			return nil, ErrInvalidRating
		}
	}

	updated, err := s.swapRepo.UpdateStatus(ctx, swap.ID, input.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwapNotFound
		}
		return nil, fmt.Errorf("failed to update swap request: %w", err)
	}

	s.log.Info().
		Str("swap_id", swap.ID).
		Str("actor_id", input.ActorID).
		Str("from", string(swap.Status)).
		Str("to", string(input.Status)).
		Msg("swap status changed")

	if !rateOnComplete {
		return updated, nil
	}

	if _, err := s.feedback.Record(ctx, RecordFeedbackInput{
		SwapRequestID: swap.ID,
		ReviewerID:    input.ActorID,
		RevieweeID:    swap.Counterpart(input.ActorID),
		Rating:        *input.Rating,
		Comment:       input.Feedback,
	}); err != nil {
		return nil, err
	}

	if err := s.userRepo.IncrementSwapsCompleted(ctx, input.ActorID); err != nil {
		return nil, fmt.Errorf("failed to increment completed swaps: %w", err)
	}

	return updated, nil
}

// Delete removes a pending request. Only the requester may delete it.
func (s *SwapService) Delete(ctx context.Context, swapID, actorID string) error {
	swap, err := s.find(ctx, swapID)
	if err != nil {
		return err
	}
	if swap.RequesterID != actorID {
		return ErrNotSwapRequester
	}
	if swap.Status != models.SwapStatusPending {
		return ErrSwapNotPending
	}

	deleted, err := s.swapRepo.DeletePending(ctx, swap.ID)
	if err != nil {
		return fmt.Errorf("failed to delete swap request: %w", err)
	}
	if !deleted {
		// Moved out of pending between the read and the delete.
		return ErrSwapNotPending
	}

	s.log.Info().Str("swap_id", swap.ID).Str("actor_id", actorID).Msg("swap request deleted")
	return nil
}

// ListForUser returns the user's incoming and outgoing requests, newest first.
func (s *SwapService) ListForUser(ctx context.Context, userID string, status *models.SwapStatus) ([]SwapView, error) {
	swaps, err := s.swapRepo.ListForUser(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list swap requests: %w", err)
	}

	views := make([]SwapView, len(swaps))
	for i, swap := range swaps {
		direction := SwapIncoming
		if swap.RequesterID == userID {
			direction = SwapOutgoing
		}
		views[i] = SwapView{SwapRequest: swap, Type: direction}
	}
	return views, nil
}

func (s *SwapService) find(ctx context.Context, id string) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwapNotFound
		}
		return nil, fmt.Errorf("failed to find swap request: %w", err)
	}
	return swap, nil
}
