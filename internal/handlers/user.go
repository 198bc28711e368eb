package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/skillswap-api/internal/dto"
	apierrors "github.com/yukikurage/skillswap-api/internal/errors"
	"github.com/yukikurage/skillswap-api/internal/services"
	"github.com/yukikurage/skillswap-api/internal/utils"
)

// UserHandler serves the public directory.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers handles GET /api/users?search=&skill=&page=&limit=
func (h *UserHandler) ListUsers(c *gin.Context) {
	page := utils.GetPaginationParams(c)

	users, total, err := h.userService.Browse(c.Request.Context(), services.BrowseInput{
		Search: c.Query("search"),
		Skill:  c.Query("skill"),
		Page:   page,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Users retrieved",
		"users":      dto.ToPublicUserDTOs(users),
		"pagination": page.Response(total),
	})
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetPublic(c.Request.Context(), c.Param("id"))
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User retrieved",
		"user":    dto.ToPublicUserDTO(*user),
	})
}
