package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/yukikurage/skillswap-api/internal/models"
)

// PublicUserDTO represents a directory profile in API responses
type PublicUserDTO struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Bio            string    `json:"bio"`
	SkillsOffered  []string  `json:"skills_offered"`
	SkillsWanted   []string  `json:"skills_wanted"`
	Availability   []string  `json:"availability"`
	Rating         float64   `json:"rating"`
	SwapsCompleted int       `json:"swaps_completed"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserDTO represents the caller's own account, or an account seen by an admin
type UserDTO struct {
	PublicUserDTO
	Email       string `json:"email"`
	IsPublic    bool   `json:"is_public"`
	IsAdmin     bool   `json:"is_admin"`
	IsBanned    bool   `json:"is_banned"`
	IsProtected bool   `json:"is_protected,omitempty"`
}

// UserListResponse represents a paginated list of users
type UserListResponse struct {
	Users      []UserDTO `json:"users"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalCount int64     `json:"total_count"`
}

// ToPublicUserDTO converts a User model to PublicUserDTO
func ToPublicUserDTO(user models.User) PublicUserDTO {
	return PublicUserDTO{
		ID:             user.ID,
		Name:           user.Name,
		Location:       user.Location,
		Bio:            user.Bio,
		SkillsOffered:  nonNil(user.SkillsOffered),
		SkillsWanted:   nonNil(user.SkillsWanted),
		Availability:   nonNil(user.Availability),
		Rating:         user.Rating,
		SwapsCompleted: user.SwapsCompleted,
		CreatedAt:      user.CreatedAt,
	}
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		PublicUserDTO: ToPublicUserDTO(user),
		Email:         user.Email,
		IsPublic:      user.IsPublic,
		IsAdmin:       user.IsAdmin,
		IsBanned:      user.IsBanned,
		IsProtected:   user.IsProtected,
	}
}

// ToPublicUserDTOs converts a slice of users to directory profiles
func ToPublicUserDTOs(users []models.User) []PublicUserDTO {
	return lo.Map(users, func(user models.User, _ int) PublicUserDTO {
		return ToPublicUserDTO(user)
	})
}

// ToUserDTOs converts a slice of users to full account views
func ToUserDTOs(users []models.User) []UserDTO {
	return lo.Map(users, func(user models.User, _ int) UserDTO {
		return ToUserDTO(user)
	})
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
