package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is written once and never updated.
type Feedback struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	SwapRequestID string    `gorm:"type:varchar(36);not null;index" json:"swap_request_id"`
	ReviewerID    string    `gorm:"type:varchar(36);not null;index" json:"reviewer_id"`
	RevieweeID    string    `gorm:"type:varchar(36);not null;index" json:"reviewee_id"`
	Rating        int       `gorm:"not null" json:"rating"`
	Comment       string    `gorm:"type:text" json:"comment"`
	CreatedAt     time.Time `gorm:"index" json:"created_at"`
}

func (Feedback) TableName() string { return "feedback" }

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
