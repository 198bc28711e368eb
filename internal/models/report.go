package models

import "time"

type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusResolved  ReportStatus = "resolved"
	ReportStatusDismissed ReportStatus = "dismissed"
)

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusResolved, ReportStatusDismissed:
		return true
	}
	return false
}

func (s ReportStatus) IsTerminal() bool {
	return s == ReportStatusResolved || s == ReportStatusDismissed
}

type Report struct {
	Base
	ReporterID       string       `gorm:"type:varchar(36);not null;index" json:"reporter_id"`
	ReportedUserID   string       `gorm:"type:varchar(36);not null;index" json:"reported_user_id"`
	ReporterName     string       `gorm:"type:varchar(100)" json:"reporter_name"`
	ReportedUserName string       `gorm:"type:varchar(100)" json:"reported_user_name"`
	Reason           string       `gorm:"type:varchar(255);not null" json:"reason"`
	Description      string       `gorm:"type:text" json:"description"`
	Status           ReportStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AdminNotes       string       `gorm:"type:text" json:"admin_notes,omitempty"`
	ResolvedAt       *time.Time   `json:"resolved_at,omitempty"`
}
