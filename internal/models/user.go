package models

import (
	"math"

	"gorm.io/gorm"
)

type User struct {
	Base
	Name           string         `gorm:"type:varchar(100);not null" json:"name"`
	Email          string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash   string         `gorm:"type:varchar(255);not null" json:"-"`
	Location       string         `gorm:"type:varchar(255)" json:"location"`
	Bio            string         `gorm:"type:text" json:"bio"`
	SkillsOffered  []string       `gorm:"type:text;serializer:json" json:"skills_offered"`
	SkillsWanted   []string       `gorm:"type:text;serializer:json" json:"skills_wanted"`
	Availability   []string       `gorm:"type:text;serializer:json" json:"availability"`
	IsPublic       bool           `gorm:"not null" json:"is_public"`
	Rating         float64        `gorm:"not null;default:0" json:"rating"`
	SwapsCompleted int            `gorm:"not null;default:0" json:"swaps_completed"`
	IsAdmin        bool           `gorm:"not null;default:false" json:"is_admin"`
	IsBanned       bool           `gorm:"not null;default:false;index" json:"is_banned"`
	IsProtected    bool           `gorm:"not null;default:false" json:"is_protected"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// AverageRating returns the mean of ratings rounded to one decimal, or 0 when
// there are none.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return math.Round(float64(sum)/float64(len(ratings))*10) / 10
}
