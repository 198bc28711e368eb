package services

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/repository"
	"github.com/yukikurage/skillswap-api/internal/utils"
)

// UserService serves the public user directory.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// BrowseInput represents the directory filters.
type BrowseInput struct {
	Search string
	Skill  string
	Page   utils.PaginationParams
}

// Browse lists public, non-banned users matching the search and skill filters.
func (s *UserService) Browse(ctx context.Context, input BrowseInput) ([]models.User, int64, error) {
	return s.userRepo.ListPublic(ctx, repository.PublicUserFilter{
		Search: strings.TrimSpace(input.Search),
		Skill:  strings.TrimSpace(input.Skill),
		Page:   input.Page,
	})
}

// GetPublic returns a user's public profile. Private and banned profiles are
// reported as missing.
func (s *UserService) GetPublic(ctx context.Context, id string) (*models.User, error) {
	user, err := findUser(ctx, s.userRepo, id)
	if err != nil {
		return nil, err
	}
	if !user.IsPublic || user.IsBanned {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// cleanList trims entries and drops blanks and duplicates.
func cleanList(items []string) []string {
	trimmed := lo.Map(items, func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
	return lo.Uniq(lo.Compact(trimmed))
}
