package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/repository"
	"github.com/yukikurage/skillswap-api/internal/utils"
	"gorm.io/gorm"
)

// UserAdminService holds the moderation actions admins take on accounts.
type UserAdminService struct {
	userRepo repository.UserRepository
	log      zerolog.Logger
}

// NewUserAdminService creates a new UserAdminService.
func NewUserAdminService(userRepo repository.UserRepository, log zerolog.Logger) *UserAdminService {
	return &UserAdminService{
		userRepo: userRepo,
		log:      log.With().Str("service", "user_admin").Logger(),
	}
}

// ListUsers returns every account, newest first.
func (s *UserAdminService) ListUsers(ctx context.Context, page utils.PaginationParams) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(ctx, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// Ban suspends an account. Banning a banned user is a no-op.
func (s *UserAdminService) Ban(ctx context.Context, userID string) error {
	user, err := findUser(ctx, s.userRepo, userID)
	if err != nil {
		return err
	}
	if user.IsProtected {
		return ErrProtectedUser
	}
	return s.setBanned(ctx, user.ID, true)
}

// Unban lifts a suspension.
func (s *UserAdminService) Unban(ctx context.Context, userID string) error {
	user, err := findUser(ctx, s.userRepo, userID)
	if err != nil {
		return err
	}
	return s.setBanned(ctx, user.ID, false)
}

// Promote grants admin rights.
func (s *UserAdminService) Promote(ctx context.Context, userID string) error {
	user, err := findUser(ctx, s.userRepo, userID)
	if err != nil {
		return err
	}
	return s.setAdmin(ctx, user.ID, true)
}

// Demote revokes admin rights. Admins may demote themselves, including the
// last remaining admin; only protected accounts are refused.
func (s *UserAdminService) Demote(ctx context.Context, userID string) error {
	user, err := findUser(ctx, s.userRepo, userID)
	if err != nil {
		return err
	}
	if user.IsProtected {
		return ErrProtectedUser
	}
	return s.setAdmin(ctx, user.ID, false)
}

// Protect marks the account with the given email as a protected admin.
func (s *UserAdminService) Protect(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.userRepo.MarkProtected(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to protect user: %w", err)
	}
	user.IsAdmin = true
	user.IsProtected = true

	s.log.Info().Str("user_id", user.ID).Msg("account protected")
	return user, nil
}

func (s *UserAdminService) setBanned(ctx context.Context, id string, banned bool) error {
	if err := s.userRepo.SetBanned(ctx, id, banned); err != nil {
		return fmt.Errorf("failed to update ban status: %w", err)
	}
	s.log.Info().Str("user_id", id).Bool("banned", banned).Msg("ban status changed")
	return nil
}

func (s *UserAdminService) setAdmin(ctx context.Context, id string, admin bool) error {
	if err := s.userRepo.SetAdmin(ctx, id, admin); err != nil {
		return fmt.Errorf("failed to update admin status: %w", err)
	}
	s.log.Info().Str("user_id", id).Bool("admin", admin).Msg("admin status changed")
	return nil
}
