package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yukikurage/skillswap-api/internal/constants"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/repository"
	"github.com/yukikurage/skillswap-api/internal/security"
	"gorm.io/gorm"
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *security.TokenIssuer
	log      zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *security.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		log:      log.With().Str("service", "auth").Logger(),
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Name          string
	Email         string
	Password      string
	Location      string
	Bio           string
	SkillsOffered []string
	SkillsWanted  []string
	Availability  []string
	IsPublic      *bool
}

// AuthResult is an authenticated user together with a fresh access token.
type AuthResult struct {
	User  *models.User
	Token string
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, ErrRegisterFields
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	isPublic := true
	if input.IsPublic != nil {
		isPublic = *input.IsPublic
	}

	user := &models.User{
		Name:          name,
		Email:         email,
		PasswordHash:  hash,
		Location:      strings.TrimSpace(input.Location),
		Bio:           input.Bio,
		SkillsOffered: cleanList(input.SkillsOffered),
		SkillsWanted:  cleanList(input.SkillsWanted),
		Availability:  cleanList(input.Availability),
		IsPublic:      isPublic,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return &AuthResult{User: user, Token: token}, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.IsBanned {
		return nil, ErrAccountSuspended
	}

	if err := security.CheckPassword(user.PasswordHash, input.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, Token: token}, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return findUser(ctx, s.userRepo, id)
}

// ParseToken validates a bearer token and returns the user id it was issued for.
func (s *AuthService) ParseToken(token string) (string, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

func findUser(ctx context.Context, repo repository.UserRepository, id string) (*models.User, error) {
	user, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
