package constants

import "time"

// Context keys
const (
	ContextKeyUserID  = "user_id"
	ContextKeyIsAdmin = "is_admin"
	ContextKeyUser    = "current_user"
)

// Session
const (
	SessionCookieName = "skillswap_session"
	SessionMaxAge     = 86400 * 7
)

// Auth
const (
	MinPasswordLength   = 8
	DefaultTokenTTL     = 7 * 24 * time.Hour
	BearerPrefix        = "Bearer "
	AuthorizationHeader = "Authorization"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Feedback
const (
	MinRating = 1
	MaxRating = 5
)
