package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/services"
)

// SwapDTO represents a swap request in API responses
type SwapDTO struct {
	ID            string            `json:"id"`
	RequesterID   string            `json:"requester_id"`
	TargetID      string            `json:"target_id"`
	RequesterName string            `json:"requester_name"`
	TargetName    string            `json:"target_name"`
	SkillOffered  string            `json:"skill_offered"`
	SkillWanted   string            `json:"skill_wanted"`
	Message       string            `json:"message"`
	Status        models.SwapStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// SwapListItemDTO is a swap request tagged with its direction for the caller
type SwapListItemDTO struct {
	SwapDTO
	Type services.SwapDirection `json:"type"`
}

// FeedbackDTO represents a review in API responses
type FeedbackDTO struct {
	ID            string    `json:"id"`
	SwapRequestID string    `json:"swap_request_id"`
	ReviewerID    string    `json:"reviewer_id"`
	RevieweeID    string    `json:"reviewee_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToSwapDTO converts a SwapRequest model to SwapDTO
func ToSwapDTO(swap models.SwapRequest) SwapDTO {
	return SwapDTO{
		ID:            swap.ID,
		RequesterID:   swap.RequesterID,
		TargetID:      swap.TargetID,
		RequesterName: swap.RequesterName,
		TargetName:    swap.TargetName,
		SkillOffered:  swap.SkillOffered,
		SkillWanted:   swap.SkillWanted,
		Message:       swap.Message,
		Status:        swap.Status,
		CreatedAt:     swap.CreatedAt,
		UpdatedAt:     swap.UpdatedAt,
	}
}

// ToSwapListItemDTOs converts tagged swap views to list items
func ToSwapListItemDTOs(views []services.SwapView) []SwapListItemDTO {
	return lo.Map(views, func(view services.SwapView, _ int) SwapListItemDTO {
		return SwapListItemDTO{SwapDTO: ToSwapDTO(view.SwapRequest), Type: view.Type}
	})
}

// ToFeedbackDTO converts a Feedback model to FeedbackDTO
func ToFeedbackDTO(feedback models.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:            feedback.ID,
		SwapRequestID: feedback.SwapRequestID,
		ReviewerID:    feedback.ReviewerID,
		RevieweeID:    feedback.RevieweeID,
		Rating:        feedback.Rating,
		Comment:       feedback.Comment,
		CreatedAt:     feedback.CreatedAt,
	}
}

// ToFeedbackDTOs converts a slice of feedback
func ToFeedbackDTOs(feedback []models.Feedback) []FeedbackDTO {
	return lo.Map(feedback, func(f models.Feedback, _ int) FeedbackDTO {
		return ToFeedbackDTO(f)
	})
}
