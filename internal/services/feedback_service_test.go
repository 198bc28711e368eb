package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/skillswap-api/internal/lock"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/repository"
	"github.com/yukikurage/skillswap-api/internal/testutil"
	"gorm.io/gorm"
)

func newFeedbackService(t *testing.T) (*FeedbackService, *gorm.DB) {
	t.Helper()

	db := testutil.NewDB(t)
	service := NewFeedbackService(
		repository.NewFeedbackRepository(db),
		repository.NewUserRepository(db),
		repository.NewSwapRepository(db),
		lock.NewKeyedMutex(),
		zerolog.Nop(),
	)
	return service, db
}

func TestFeedbackService_RecordRecomputesMean(t *testing.T) {
	service, db := newFeedbackService(t)
	ctx := context.Background()

	reviewee := testutil.CreateUser(t, db, "Reviewee", "reviewee@example.com")
	reviewers := []*models.User{
		testutil.CreateUser(t, db, "Alice", "alice@example.com"),
		testutil.CreateUser(t, db, "Bob", "bob@example.com"),
		testutil.CreateUser(t, db, "Carol", "carol@example.com"),
	}

	for i, score := range []int{5, 4, 5} {
		_, err := service.Record(ctx, RecordFeedbackInput{
			SwapRequestID: "swap-1",
			ReviewerID:    reviewers[i].ID,
			RevieweeID:    reviewee.ID,
			Rating:        score,
		})
		require.NoError(t, err)
	}

	assert.Equal(t, 4.7, testutil.Reload(t, db, reviewee.ID).Rating)
	for _, reviewer := range reviewers {
		assert.Equal(t, 0.0, testutil.Reload(t, db, reviewer.ID).Rating)
	}

	feedback, err := service.ListFor(ctx, reviewee.ID)
	require.NoError(t, err)
	assert.Len(t, feedback, 3)
}

func TestFeedbackService_ListForNewestFirst(t *testing.T) {
	service, db := newFeedbackService(t)
	ctx := context.Background()

	reviewer := testutil.CreateUser(t, db, "Reviewer", "reviewer@example.com")
	reviewee := testutil.CreateUser(t, db, "Reviewee", "reviewee@example.com")

	ages := []time.Duration{3 * time.Hour, time.Hour, 2 * time.Hour}
	ids := make([]string, len(ages))
	for i, age := range ages {
		feedback, err := service.Record(ctx, RecordFeedbackInput{
			SwapRequestID: "swap-1",
			ReviewerID:    reviewer.ID,
			RevieweeID:    reviewee.ID,
			Rating:        3,
		})
		require.NoError(t, err)
		testutil.Backdate(t, db, &models.Feedback{}, feedback.ID, age)
		ids[i] = feedback.ID
	}

	feedback, err := service.ListFor(ctx, reviewee.ID)
	require.NoError(t, err)
	require.Len(t, feedback, 3)
	assert.Equal(t, []string{ids[1], ids[2], ids[0]}, []string{feedback[0].ID, feedback[1].ID, feedback[2].ID})
}

func TestFeedbackService_RecordValidation(t *testing.T) {
	service, db := newFeedbackService(t)
	ctx := context.Background()
	reviewee := testutil.CreateUser(t, db, "Reviewee", "reviewee@example.com")

	for _, score := range []int{0, 6, -1} {
		_, err := service.Record(ctx, RecordFeedbackInput{RevieweeID: reviewee.ID, Rating: score})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}

	_, err := service.Record(ctx, RecordFeedbackInput{RevieweeID: "missing", Rating: 3})
	assert.ErrorIs(t, err, ErrUserNotFound)

	var count int64
	db.Model(&models.Feedback{}).Count(&count)
	assert.Zero(t, count)
}

func TestFeedbackService_ConcurrentRecords(t *testing.T) {
	service, db := newFeedbackService(t)
	ctx := context.Background()

	reviewer := testutil.CreateUser(t, db, "Reviewer", "reviewer@example.com")
	reviewee := testutil.CreateUser(t, db, "Reviewee", "reviewee@example.com")

	scores := []int{1, 2, 3, 4, 5, 5, 4, 3, 2, 1, 5, 5}
	var wg sync.WaitGroup
	for _, score := range scores {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			_, err := service.Record(ctx, RecordFeedbackInput{
				SwapRequestID: "swap-1",
				ReviewerID:    reviewer.ID,
				RevieweeID:    reviewee.ID,
				Rating:        score,
			})
			assert.NoError(t, err)
		}(score)
	}
	wg.Wait()

	assert.Equal(t, models.AverageRating(scores), testutil.Reload(t, db, reviewee.ID).Rating)
}

func TestFeedbackService_Submit(t *testing.T) {
	service, db := newFeedbackService(t)
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "Alice", "alice@example.com")
	bob := testutil.CreateUser(t, db, "Bob", "bob@example.com")
	carol := testutil.CreateUser(t, db, "Carol", "carol@example.com")

	swap := &models.SwapRequest{
		RequesterID:  alice.ID,
		TargetID:     bob.ID,
		SkillOffered: "Guitar",
		SkillWanted:  "Spanish",
		Status:       models.SwapStatusCompleted,
	}
	require.NoError(t, db.Create(swap).Error)

	_, err := service.Submit(ctx, RecordFeedbackInput{
		SwapRequestID: swap.ID, ReviewerID: carol.ID, RevieweeID: bob.ID, Rating: 4,
	})
	assert.ErrorIs(t, err, ErrReviewerNotParticipant)

	_, err = service.Submit(ctx, RecordFeedbackInput{
		SwapRequestID: swap.ID, ReviewerID: alice.ID, RevieweeID: carol.ID, Rating: 4,
	})
	assert.ErrorIs(t, err, ErrRevieweeNotCounterpart)

	_, err = service.Submit(ctx, RecordFeedbackInput{
		SwapRequestID: "missing", ReviewerID: alice.ID, RevieweeID: bob.ID, Rating: 4,
	})
	assert.ErrorIs(t, err, ErrSwapNotFound)

	feedback, err := service.Submit(ctx, RecordFeedbackInput{
		SwapRequestID: swap.ID, ReviewerID: bob.ID, RevieweeID: alice.ID, Rating: 4, Comment: " thanks ",
	})
	require.NoError(t, err)
	assert.Equal(t, "thanks", feedback.Comment)
	assert.Equal(t, 4.0, testutil.Reload(t, db, alice.ID).Rating)
}
