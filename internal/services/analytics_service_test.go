package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/repository"
	"github.com/yukikurage/skillswap-api/internal/testutil"
)

func TestAnalyticsService_Summary(t *testing.T) {
	db := testutil.NewDB(t)
	service := NewAnalyticsService(
		repository.NewUserRepository(db),
		repository.NewSwapRepository(db),
		repository.NewReportRepository(db),
	)

	alice := testutil.CreateUser(t, db, "Alice", "alice@example.com")
	bob := testutil.CreateUser(t, db, "Bob", "bob@example.com")
	banned := testutil.CreateUser(t, db, "Banned", "banned@example.com")
	require.NoError(t, db.Model(banned).Updates(map[string]any{"is_banned": true, "rating": 1.0}).Error)
	require.NoError(t, db.Model(alice).Update("rating", 4.5).Error)
	require.NoError(t, db.Model(bob).Update("rating", 3.0).Error)

	for _, status := range []models.SwapStatus{
		models.SwapStatusPending,
		models.SwapStatusAccepted,
		models.SwapStatusCompleted,
	} {
		require.NoError(t, db.Create(&models.SwapRequest{
			RequesterID: alice.ID, TargetID: bob.ID, SkillOffered: "a", SkillWanted: "b", Status: status,
		}).Error)
	}

	require.NoError(t, db.Create(&models.Report{
		ReporterID: alice.ID, ReportedUserID: banned.ID, Reason: "spam", Status: models.ReportStatusPending,
	}).Error)

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalUsers)
	assert.Equal(t, int64(2), summary.ActiveSwaps)
	assert.Equal(t, int64(1), summary.CompletedSwaps)
	assert.Equal(t, int64(1), summary.PendingReports)
	assert.Equal(t, 33, summary.SuccessRate)
	assert.Equal(t, 3.8, summary.AverageRating)
}

func TestAnalyticsService_AverageRatingSkipsBannedUsers(t *testing.T) {
	db := testutil.NewDB(t)
	service := NewAnalyticsService(
		repository.NewUserRepository(db),
		repository.NewSwapRepository(db),
		repository.NewReportRepository(db),
	)

	alice := testutil.CreateUser(t, db, "Alice", "alice@example.com")
	banned := testutil.CreateUser(t, db, "Banned", "banned@example.com")
	require.NoError(t, db.Model(alice).Update("rating", 5.0).Error)
	require.NoError(t, db.Model(banned).Updates(map[string]any{"is_banned": true, "rating": 1.0}).Error)

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.TotalUsers)
	assert.Equal(t, 5.0, summary.AverageRating)
}

func TestAnalyticsService_EmptySummary(t *testing.T) {
	db := testutil.NewDB(t)
	service := NewAnalyticsService(
		repository.NewUserRepository(db),
		repository.NewSwapRepository(db),
		repository.NewReportRepository(db),
	)

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.SuccessRate)
	assert.Zero(t, summary.AverageRating)
}
