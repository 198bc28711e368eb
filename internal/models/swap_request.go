package models

type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCompleted SwapStatus = "completed"
	SwapStatusCancelled SwapStatus = "cancelled"
)

// IsTerminal reports whether no further transition is expected from s.
func (s SwapStatus) IsTerminal() bool {
	switch s {
	case SwapStatusRejected, SwapStatusCompleted, SwapStatusCancelled:
		return true
	}
	return false
}

// IsTransitionTarget reports whether s can be set through a status update.
func (s SwapStatus) IsTransitionTarget() bool {
	switch s {
	case SwapStatusAccepted, SwapStatusRejected, SwapStatusCompleted, SwapStatusCancelled:
		return true
	}
	return false
}

type SwapRequest struct {
	Base
	RequesterID   string     `gorm:"type:varchar(36);not null;index" json:"requester_id"`
	TargetID      string     `gorm:"type:varchar(36);not null;index" json:"target_id"`
	RequesterName string     `gorm:"type:varchar(100)" json:"requester_name"`
	TargetName    string     `gorm:"type:varchar(100)" json:"target_name"`
	SkillOffered  string     `gorm:"type:varchar(255);not null" json:"skill_offered"`
	SkillWanted   string     `gorm:"type:varchar(255);not null" json:"skill_wanted"`
	Message       string     `gorm:"type:text" json:"message"`
	Status        SwapStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
}

// IsParticipant reports whether userID is the requester or the target.
func (s *SwapRequest) IsParticipant(userID string) bool {
	return s.RequesterID == userID || s.TargetID == userID
}

// Counterpart returns the participant that is not userID.
func (s *SwapRequest) Counterpart(userID string) string {
	if s.RequesterID == userID {
		return s.TargetID
	}
	return s.RequesterID
}
