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

// MessageHandler serves admin broadcasts.
type MessageHandler struct {
	broadcastService *services.BroadcastService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(broadcastService *services.BroadcastService) *MessageHandler {
	return &MessageHandler{broadcastService: broadcastService}
}

// ListMessages handles GET /api/messages and GET /api/admin/messages
func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.broadcastService.ListActive(c.Request.Context())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Messages retrieved",
		"messages": dto.ToMessageDTOs(messages),
	})
}

// PublishMessage handles POST /api/admin/messages
func (h *MessageHandler) PublishMessage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type PublishMessageRequest struct {
		Title       string             `json:"title" binding:"required,max=255"`
		Content     string             `json:"content" binding:"required"`
		MessageType models.MessageType `json:"message_type"`
	}

	var req PublishMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	message, err := h.broadcastService.Publish(c.Request.Context(), services.PublishInput{
		Title:       req.Title,
		Content:     req.Content,
		MessageType: req.MessageType,
		CreatorID:   userID,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "Message published",
		"broadcast": dto.ToMessageDTO(*message),
	})
}
