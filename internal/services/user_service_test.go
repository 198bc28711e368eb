package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/repository"
	"github.com/yukikurage/skillswap-api/internal/testutil"
	"github.com/yukikurage/skillswap-api/internal/utils"
)

func TestUserService_Browse(t *testing.T) {
	db := testutil.NewDB(t)
	service := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	require.NoError(t, db.Create(&models.User{
		Name: "Alice", Email: "alice@example.com", Location: "Berlin", IsPublic: true,
		SkillsOffered: []string{"Guitar", "Photography"}, SkillsWanted: []string{"Spanish"},
	}).Error)
	require.NoError(t, db.Create(&models.User{
		Name: "Bob", Email: "bob@example.com", Location: "Paris", IsPublic: true,
		SkillsOffered: []string{"French"},
	}).Error)
	require.NoError(t, db.Create(&models.User{
		Name: "Hidden", Email: "hidden@example.com", Location: "Berlin", IsPublic: false,
		SkillsOffered: []string{"Guitar"},
	}).Error)
	require.NoError(t, db.Create(&models.User{
		Name: "Banned", Email: "banned@example.com", Location: "Berlin", IsPublic: true, IsBanned: true,
		SkillsOffered: []string{"Guitar"},
	}).Error)

	page := utils.NewPaginationParams(1, 20)

	users, total, err := service.Browse(ctx, BrowseInput{Page: page})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)

	for _, search := range []string{"ali", "guitar", "SPANISH"} {
		users, _, err = service.Browse(ctx, BrowseInput{Search: search, Page: page})
		require.NoError(t, err)
		require.Len(t, users, 1, search)
		assert.Equal(t, "Alice", users[0].Name)
	}

	// Location is shown on the profile but is not searchable.
	users, total, err = service.Browse(ctx, BrowseInput{Search: "berlin", Page: page})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, users)

	users, _, err = service.Browse(ctx, BrowseInput{Skill: "photo", Page: page})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)
}

func TestUserService_GetPublic(t *testing.T) {
	db := testutil.NewDB(t)
	service := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	public := testutil.CreateUser(t, db, "Alice", "alice@example.com")
	hidden := testutil.CreateUser(t, db, "Hidden", "hidden@example.com")
	require.NoError(t, db.Model(hidden).Update("is_public", false).Error)

	got, err := service.GetPublic(ctx, public.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)

	_, err = service.GetPublic(ctx, hidden.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = service.GetPublic(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
