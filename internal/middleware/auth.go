package middleware

import (
	"errors"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/skillswap-api/internal/constants"
	apierrors "github.com/yukikurage/skillswap-api/internal/errors"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/services"
)

// RequireAuth identifies the caller from a bearer token or, failing that, the
// session cookie. The user row is reloaded on every request so bans and admin
// changes apply immediately.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c, authService)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		user, err := authService.GetUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				apierrors.Unauthorized(c, "User not found")
			} else {
				apierrors.Respond(c, err)
			}
			c.Abort()
			return
		}

		if user.IsBanned {
			apierrors.Forbidden(c, services.ErrAccountSuspended.Error())
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyIsAdmin, user.IsAdmin)
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(constants.ContextKeyIsAdmin) {
			apierrors.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func requestUserID(c *gin.Context, authService *services.AuthService) (string, bool) {
	if header := c.GetHeader(constants.AuthorizationHeader); strings.HasPrefix(header, constants.BearerPrefix) {
		userID, err := authService.ParseToken(strings.TrimPrefix(header, constants.BearerPrefix))
		if err != nil {
			return "", false
		}
		return userID, true
	}

	userID, ok := sessions.Default(c).Get(constants.ContextKeyUserID).(string)
	return userID, ok && userID != ""
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(constants.ContextKeyUserID)
	return userID, userID != ""
}

// GetCurrentUser retrieves the user loaded by RequireAuth
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
