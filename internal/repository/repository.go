package repository

import (
	"context"

	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns all users, newest first
	List(ctx context.Context, page utils.PaginationParams) ([]models.User, int64, error)

	// ListPublic returns public, non-banned users matching the filter, newest first
	ListPublic(ctx context.Context, filter PublicUserFilter) ([]models.User, int64, error)

	// SetBanned writes the banned flag
	SetBanned(ctx context.Context, id string, banned bool) error

	// SetAdmin writes the admin flag
	SetAdmin(ctx context.Context, id string, admin bool) error

	// MarkProtected grants admin rights and the protected flag
	MarkProtected(ctx context.Context, id string) error

	// IncrementSwapsCompleted atomically adds one to the completed swap counter
	IncrementSwapsCompleted(ctx context.Context, id string) error

	// CountActive counts users that are not banned
	CountActive(ctx context.Context) (int64, error)

	// AverageRating averages the rating of non-banned users that have been rated at least once
	AverageRating(ctx context.Context) (float64, error)
}

// PublicUserFilter holds filtering options for the public directory
type PublicUserFilter struct {
	Search string
	Skill  string
	Page   utils.PaginationParams
}

// SwapRepository defines the interface for swap request data access
type SwapRepository interface {
	// Create creates a new swap request
	Create(ctx context.Context, swap *models.SwapRequest) error

	// FindByID finds a swap request by ID
	FindByID(ctx context.Context, id string) (*models.SwapRequest, error)

	// ListForUser lists requests where the user is requester or target, newest first
	ListForUser(ctx context.Context, userID string, status *models.SwapStatus) ([]models.SwapRequest, error)

	// UpdateStatus writes a new status and returns the updated request
	UpdateStatus(ctx context.Context, id string, status models.SwapStatus) (*models.SwapRequest, error)

	// DeletePending hard deletes the request if it is still pending
	DeletePending(ctx context.Context, id string) (bool, error)

	// Count counts requests, optionally restricted to the given statuses
	Count(ctx context.Context, statuses ...models.SwapStatus) (int64, error)
}

// FeedbackRepository defines the interface for feedback data access
type FeedbackRepository interface {
	// CreateAndRecomputeRating stores the feedback and overwrites the reviewee's
	// rating with the mean of all of their feedback, in one transaction
	CreateAndRecomputeRating(ctx context.Context, feedback *models.Feedback) (float64, error)

	// ListByReviewee lists feedback received by a user, newest first
	ListByReviewee(ctx context.Context, revieweeID string) ([]models.Feedback, error)
}

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// Create creates a new report
	Create(ctx context.Context, report *models.Report) error

	// FindByID finds a report by ID
	FindByID(ctx context.Context, id string) (*models.Report, error)

	// ListByStatus lists reports in the given status, newest first
	ListByStatus(ctx context.Context, status models.ReportStatus) ([]models.Report, error)

	// Update saves the status, notes and resolution time of a report
	Update(ctx context.Context, report *models.Report) error

	// CountByStatus counts reports in the given status
	CountByStatus(ctx context.Context, status models.ReportStatus) (int64, error)
}

// AdminMessageRepository defines the interface for broadcast data access
type AdminMessageRepository interface {
	// Create creates a new admin message
	Create(ctx context.Context, message *models.AdminMessage) error

	// ListActive lists active messages, newest first
	ListActive(ctx context.Context) ([]models.AdminMessage, error)
}
