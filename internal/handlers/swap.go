package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/skillswap-api/internal/dto"
	apierrors "github.com/yukikurage/skillswap-api/internal/errors"
	"github.com/yukikurage/skillswap-api/internal/middleware"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/services"
)

// SwapHandler handles swap request endpoints.
type SwapHandler struct {
	swapService *services.SwapService
}

// NewSwapHandler creates a new SwapHandler.
func NewSwapHandler(swapService *services.SwapService) *SwapHandler {
	return &SwapHandler{swapService: swapService}
}

// ListSwaps handles GET /api/swaps?status=
func (h *SwapHandler) ListSwaps(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var status *models.SwapStatus
	if raw := c.Query("status"); raw != "" {
		s := models.SwapStatus(raw)
		status = &s
	}

	views, err := h.swapService.ListForUser(c.Request.Context(), userID, status)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Swap requests retrieved",
		"swaps":   dto.ToSwapListItemDTOs(views),
	})
}

// CreateSwap handles POST /api/swaps
func (h *SwapHandler) CreateSwap(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateSwapRequest struct {
		TargetID     string `json:"target_id" binding:"required"`
		SkillOffered string `json:"skill_offered" binding:"required,max=255"`
		SkillWanted  string `json:"skill_wanted" binding:"required,max=255"`
		Message      string `json:"message"`
	}

	var req CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	swap, err := h.swapService.Create(c.Request.Context(), services.CreateSwapInput{
		RequesterID:  userID,
		TargetID:     req.TargetID,
		SkillOffered: req.SkillOffered,
		SkillWanted:  req.SkillWanted,
		Message:      req.Message,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Swap request sent",
		"swap":    dto.ToSwapDTO(*swap),
	})
}

// GetSwap handles GET /api/swaps/:id
func (h *SwapHandler) GetSwap(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	swap, err := h.swapService.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Swap request retrieved",
		"swap":    dto.ToSwapDTO(*swap),
	})
}

// UpdateSwap handles PATCH /api/swaps/:id
func (h *SwapHandler) UpdateSwap(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type UpdateSwapRequest struct {
		Status   models.SwapStatus `json:"status" binding:"required"`
		Rating   *int              `json:"rating"`
		Feedback string            `json:"feedback"`
	}

	var req UpdateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	swap, err := h.swapService.Transition(c.Request.Context(), services.TransitionInput{
		SwapID:   c.Param("id"),
		ActorID:  userID,
		Status:   req.Status,
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Swap request updated",
		"swap":    dto.ToSwapDTO(*swap),
	})
}

// DeleteSwap handles DELETE /api/swaps/:id
func (h *SwapHandler) DeleteSwap(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.swapService.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Swap request deleted",
	})
}
