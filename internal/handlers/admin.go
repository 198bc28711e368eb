package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/skillswap-api/internal/dto"
	apierrors "github.com/yukikurage/skillswap-api/internal/errors"
	"github.com/yukikurage/skillswap-api/internal/services"
	"github.com/yukikurage/skillswap-api/internal/utils"
)

// AdminHandler handles account moderation and the dashboard.
type AdminHandler struct {
	userAdmin *services.UserAdminService
	analytics *services.AnalyticsService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(userAdmin *services.UserAdminService, analytics *services.AnalyticsService) *AdminHandler {
	return &AdminHandler{
		userAdmin: userAdmin,
		analytics: analytics,
	}
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page := utils.GetPaginationParams(c)

	users, total, err := h.userAdmin.ListUsers(c.Request.Context(), page)
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Users retrieved",
		"users":      dto.ToUserDTOs(users),
		"pagination": page.Response(total),
	})
}

// BanUser handles POST /api/admin/users/:id/ban
func (h *AdminHandler) BanUser(c *gin.Context) {
	h.moderate(c, h.userAdmin.Ban, "User banned")
}

// UnbanUser handles DELETE /api/admin/users/:id/ban
func (h *AdminHandler) UnbanUser(c *gin.Context) {
	h.moderate(c, h.userAdmin.Unban, "User unbanned")
}

// PromoteUser handles POST /api/admin/users/:id/admin
func (h *AdminHandler) PromoteUser(c *gin.Context) {
	h.moderate(c, h.userAdmin.Promote, "User promoted to admin")
}

// DemoteUser handles DELETE /api/admin/users/:id/admin
func (h *AdminHandler) DemoteUser(c *gin.Context) {
	h.moderate(c, h.userAdmin.Demote, "Admin rights removed")
}

// GetAnalytics handles GET /api/admin/analytics
func (h *AdminHandler) GetAnalytics(c *gin.Context) {
	summary, err := h.analytics.Summary(c.Request.Context())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Analytics retrieved",
		"analytics": dto.ToAnalyticsDTO(*summary),
	})
}

func (h *AdminHandler) moderate(c *gin.Context, action func(ctx context.Context, userID string) error, message string) {
	userID := c.Param("id")
	if err := action(c.Request.Context(), userID); err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"user_id": userID,
	})
}
