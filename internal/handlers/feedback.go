package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/skillswap-api/internal/dto"
	apierrors "github.com/yukikurage/skillswap-api/internal/errors"
	"github.com/yukikurage/skillswap-api/internal/middleware"
	"github.com/yukikurage/skillswap-api/internal/services"
)

// FeedbackHandler handles feedback endpoints.
type FeedbackHandler struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// ListFeedback handles GET /api/feedback?user_id=. Without user_id the
// caller's own feedback is returned.
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}
	if subject := c.Query("user_id"); subject != "" {
		userID = subject
	}

	feedback, err := h.feedbackService.ListFor(c.Request.Context(), userID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Feedback retrieved",
		"feedback": dto.ToFeedbackDTOs(feedback),
	})
}

// CreateFeedback handles POST /api/feedback
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateFeedbackRequest struct {
		SwapRequestID string `json:"swap_request_id" binding:"required"`
		RevieweeID    string `json:"reviewee_id" binding:"required"`
		Rating        int    `json:"rating" binding:"required"`
		Comment       string `json:"comment"`
	}

	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	feedback, err := h.feedbackService.Submit(c.Request.Context(), services.RecordFeedbackInput{
		SwapRequestID: req.SwapRequestID,
		ReviewerID:    userID,
		RevieweeID:    req.RevieweeID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Feedback submitted",
		"feedback": dto.ToFeedbackDTO(*feedback),
	})
}
