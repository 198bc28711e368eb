package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/skillswap-api/internal/models"
)

func TestGormFeedbackRepository_CreateAndRecomputeRating_RollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedbackRepository(db)

	boom := errors.New("deadlock detected")
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "feedback"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "rating" FROM "feedback"`)).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(5).AddRow(4))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "rating"=`)).
		WillReturnError(boom)
	mock.ExpectRollback()

	_, err := repo.CreateAndRecomputeRating(context.Background(), &models.Feedback{
		SwapRequestID: "swap-1",
		ReviewerID:    "user-1",
		RevieweeID:    "user-2",
		Rating:        4,
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormFeedbackRepository_CreateAndRecomputeRating_Commits(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFeedbackRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "feedback"`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "rating" FROM "feedback"`)).
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(5).AddRow(4).AddRow(5))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "rating"=`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rating, err := repo.CreateAndRecomputeRating(context.Background(), &models.Feedback{
		SwapRequestID: "swap-1",
		ReviewerID:    "user-1",
		RevieweeID:    "user-2",
		Rating:        5,
	})
	require.NoError(t, err)
	require.Equal(t, 4.7, rating)
	require.NoError(t, mock.ExpectationsWereMet())
}
