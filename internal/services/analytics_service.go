package services

import (
	"context"
	"fmt"
	"math"

	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/repository"
)

// AnalyticsService computes the admin dashboard figures.
type AnalyticsService struct {
	userRepo   repository.UserRepository
	swapRepo   repository.SwapRepository
	reportRepo repository.ReportRepository
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(userRepo repository.UserRepository, swapRepo repository.SwapRepository, reportRepo repository.ReportRepository) *AnalyticsService {
	return &AnalyticsService{
		userRepo:   userRepo,
		swapRepo:   swapRepo,
		reportRepo: reportRepo,
	}
}

// Summary holds platform-wide counters. SuccessRate is the share of all swaps
// that completed, in whole percent.
type Summary struct {
	TotalUsers     int64
	ActiveSwaps    int64
	CompletedSwaps int64
	PendingReports int64
	SuccessRate    int
	AverageRating  float64
}

// Summary gathers the dashboard counters.
func (s *AnalyticsService) Summary(ctx context.Context) (*Summary, error) {
	totalUsers, err := s.userRepo.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	totalSwaps, err := s.swapRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count swaps: %w", err)
	}

	activeSwaps, err := s.swapRepo.Count(ctx, models.SwapStatusPending, models.SwapStatusAccepted)
	if err != nil {
		return nil, fmt.Errorf("failed to count active swaps: %w", err)
	}

	completedSwaps, err := s.swapRepo.Count(ctx, models.SwapStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to count completed swaps: %w", err)
	}

	pendingReports, err := s.reportRepo.CountByStatus(ctx, models.ReportStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to count reports: %w", err)
	}

	averageRating, err := s.userRepo.AverageRating(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to average ratings: %w", err)
	}

	summary := &Summary{
		TotalUsers:     totalUsers,
		ActiveSwaps:    activeSwaps,
		CompletedSwaps: completedSwaps,
		PendingReports: pendingReports,
		AverageRating:  math.Round(averageRating*10) / 10,
	}
	if totalSwaps > 0 {
		summary.SuccessRate = int(math.Round(float64(completedSwaps) / float64(totalSwaps) * 100))
	}
	return summary, nil
}
