package dto

import (
	"time"

	"github.com/samber/lo"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/services"
)

// ReportDTO represents a report in API responses
type ReportDTO struct {
	ID               string              `json:"id"`
	ReporterID       string              `json:"reporter_id"`
	ReportedUserID   string              `json:"reported_user_id"`
	ReporterName     string              `json:"reporter_name"`
	ReportedUserName string              `json:"reported_user_name"`
	Reason           string              `json:"reason"`
	Description      string              `json:"description"`
	Status           models.ReportStatus `json:"status"`
	AdminNotes       string              `json:"admin_notes,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	ResolvedAt       *time.Time          `json:"resolved_at,omitempty"`
}

// MessageDTO represents an admin broadcast in API responses
type MessageDTO struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	MessageType models.MessageType `json:"message_type"`
	IsActive    bool               `json:"is_active"`
	CreatedBy   string             `json:"created_by"`
	CreatedAt   time.Time          `json:"created_at"`
}

// AnalyticsDTO represents the admin dashboard figures
type AnalyticsDTO struct {
	TotalUsers     int64   `json:"total_users"`
	ActiveSwaps    int64   `json:"active_swaps"`
	CompletedSwaps int64   `json:"completed_swaps"`
	PendingReports int64   `json:"pending_reports"`
	SuccessRate    int     `json:"success_rate"`
	AverageRating  float64 `json:"average_rating"`
}

// ToReportDTO converts a Report model to ReportDTO
func ToReportDTO(report models.Report) ReportDTO {
	return ReportDTO{
		ID:               report.ID,
		ReporterID:       report.ReporterID,
		ReportedUserID:   report.ReportedUserID,
		ReporterName:     report.ReporterName,
		ReportedUserName: report.ReportedUserName,
		Reason:           report.Reason,
		Description:      report.Description,
		Status:           report.Status,
		AdminNotes:       report.AdminNotes,
		CreatedAt:        report.CreatedAt,
		ResolvedAt:       report.ResolvedAt,
	}
}

// ToReportDTOs converts a slice of reports
func ToReportDTOs(reports []models.Report) []ReportDTO {
	return lo.Map(reports, func(report models.Report, _ int) ReportDTO {
		return ToReportDTO(report)
	})
}

// ToMessageDTO converts an AdminMessage model to MessageDTO
func ToMessageDTO(message models.AdminMessage) MessageDTO {
	return MessageDTO{
		ID:          message.ID,
		Title:       message.Title,
		Content:     message.Content,
		MessageType: message.MessageType,
		IsActive:    message.IsActive,
		CreatedBy:   message.CreatedBy,
		CreatedAt:   message.CreatedAt,
	}
}

// ToMessageDTOs converts a slice of admin messages
func ToMessageDTOs(messages []models.AdminMessage) []MessageDTO {
	return lo.Map(messages, func(message models.AdminMessage, _ int) MessageDTO {
		return ToMessageDTO(message)
	})
}

// ToAnalyticsDTO converts a service summary
func ToAnalyticsDTO(summary services.Summary) AnalyticsDTO {
	return AnalyticsDTO{
		TotalUsers:     summary.TotalUsers,
		ActiveSwaps:    summary.ActiveSwaps,
		CompletedSwaps: summary.CompletedSwaps,
		PendingReports: summary.PendingReports,
		SuccessRate:    summary.SuccessRate,
		AverageRating:  summary.AverageRating,
	}
}
