package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/repository"
	"gorm.io/gorm"
)

// ReportService handles the moderation queue.
type ReportService struct {
	reportRepo repository.ReportRepository
	userRepo   repository.UserRepository
	log        zerolog.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(reportRepo repository.ReportRepository, userRepo repository.UserRepository, log zerolog.Logger) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		userRepo:   userRepo,
		log:        log.With().Str("service", "report").Logger(),
	}
}

// FileReportInput represents input for filing a report
type FileReportInput struct {
	ReporterID     string
	ReportedUserID string
	Reason         string
	Description    string
}

// ResolveReportInput represents an admin decision on a report
type ResolveReportInput struct {
	ReportID   string
	Status     models.ReportStatus
	AdminNotes string
}

// File opens a pending report against another user.
func (s *ReportService) File(ctx context.Context, input FileReportInput) (*models.Report, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, ErrReasonRequired
	}
	if input.ReporterID == input.ReportedUserID {
		return nil, ErrSelfReport
	}

	reporter, err := findUser(ctx, s.userRepo, input.ReporterID)
	if err != nil {
		return nil, err
	}
	reported, err := findUser(ctx, s.userRepo, input.ReportedUserID)
	if err != nil {
		return nil, err
	}

	report := &models.Report{
		ReporterID:       reporter.ID,
		ReportedUserID:   reported.ID,
		ReporterName:     reporter.Name,
		ReportedUserName: reported.Name,
		Reason:           reason,
		Description:      strings.TrimSpace(input.Description),
		Status:           models.ReportStatusPending,
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	s.log.Info().Str("report_id", report.ID).Str("reported_user_id", reported.ID).Msg("report filed")
	return report, nil
}

// ListPending returns the open queue, newest first.
func (s *ReportService) ListPending(ctx context.Context) ([]models.Report, error) {
	reports, err := s.reportRepo.ListByStatus(ctx, models.ReportStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// Resolve records an admin decision. The resolution time is stamped only
// when the report reaches resolved or dismissed; moving a report back to
// pending keeps whatever time it had.
func (s *ReportService) Resolve(ctx context.Context, input ResolveReportInput) (*models.Report, error) {
	if !input.Status.IsValid() {
		return nil, ErrInvalidReportStatus
	}

	report, err := s.reportRepo.FindByID(ctx, input.ReportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to find report: %w", err)
	}

	report.Status = input.Status
	report.AdminNotes = strings.TrimSpace(input.AdminNotes)
	if input.Status.IsTerminal() {
		now := time.Now()
		report.ResolvedAt = &now
	}

	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}

	s.log.Info().Str("report_id", report.ID).Str("status", string(report.Status)).Msg("report resolved")
	return report, nil
}
