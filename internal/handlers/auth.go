package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/skillswap-api/internal/constants"
	"github.com/yukikurage/skillswap-api/internal/dto"
	apierrors "github.com/yukikurage/skillswap-api/internal/errors"
	"github.com/yukikurage/skillswap-api/internal/middleware"
	"github.com/yukikurage/skillswap-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates an account and signs the new user in.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name          string   `json:"name" binding:"required,max=100"`
		Email         string   `json:"email" binding:"required,email"`
		Password      string   `json:"password" binding:"required"`
		Location      string   `json:"location" binding:"max=255"`
		Bio           string   `json:"bio"`
		SkillsOffered []string `json:"skills_offered"`
		SkillsWanted  []string `json:"skills_wanted"`
		Availability  []string `json:"availability"`
		IsPublic      *bool    `json:"is_public"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		Location:      req.Location,
		Bio:           req.Bio,
		SkillsOffered: req.SkillsOffered,
		SkillsWanted:  req.SkillsWanted,
		Availability:  req.Availability,
		IsPublic:      req.IsPublic,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	if err := startSession(c, result.User.ID); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    dto.ToUserDTO(*result.User),
		"token":   result.Token,
	})
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	if err := startSession(c, result.User.ID); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    dto.ToUserDTO(*result.User),
		"token":   result.Token,
	})
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Current user",
		"user":    dto.ToUserDTO(*user),
	})
}

func startSession(c *gin.Context, userID string) error {
	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, userID)
	return session.Save()
}
