package service

import (
	"context"
	"testing"

	"gamereviews/backend/internal/models"
	"gamereviews/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCRUD(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(db, 3)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, UserInput{Name: "   "})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	user, err := svc.CreateUser(ctx, UserInput{Name: "Deniz", About: "speedrunner"})
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	updated, err := svc.UpdateUser(ctx, user.ID, UserInput{Name: "Deniz K", Photo: "d.png"})
	require.NoError(t, err)
	assert.Equal(t, "Deniz K", updated.Name)
	assert.Empty(t, updated.About)

	require.NoError(t, svc.DeleteUser(ctx, user.ID))
	assert.ErrorIs(t, svc.DeleteUser(ctx, user.ID), ErrUserNotFound)
	_, err = svc.GetUser(ctx, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetProfile(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewUserService(db, 3)
	favorites := NewFavoriteService(db, 3)
	reviews := NewReviewService(db, nil, ReviewOptions{MaxAttempts: 3})
	ctx := context.Background()

	user := testutil.CreateUser(t, db, "irem")
	zelda := testutil.CreateGame(t, db, "Zelda", "adventure")
	mario := testutil.CreateGame(t, db, "Mario", "platformer")
	gone := testutil.CreateGame(t, db, "Gone", "puzzle")

	for _, g := range []*models.Game{mario, gone, zelda} {
		_, err := favorites.SetFavorite(ctx, user.ID, g.ID, Present)
		require.NoError(t, err)
	}
	require.NoError(t, NewGameService(db, 3).DeleteGame(ctx, gone.ID))

	_, err := reviews.SubmitReview(ctx, ReviewInput{ReviewerID: user.ID, GameID: zelda.ID, Rating: 5, PlayTimeHours: 40})
	require.NoError(t, err)
	_, err = reviews.SubmitReview(ctx, ReviewInput{ReviewerID: user.ID, GameID: mario.ID, Rating: 2, PlayTimeHours: 10})
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)

	require.Len(t, profile.Favorites, 2)
	assert.Equal(t, "Mario", profile.Favorites[0].Name, "favorites keep their order")
	assert.Equal(t, "Zelda", profile.Favorites[1].Name)
	assert.Len(t, profile.Reviews, 2)

	assert.Equal(t, 2, profile.Stats.ReviewCount)
	assert.Equal(t, 50.0, profile.Stats.TotalPlayTime)
	require.NotNil(t, profile.Stats.AverageRating)
	assert.Equal(t, 3.5, *profile.Stats.AverageRating)
	assert.Equal(t, "Zelda", profile.Stats.MostPlayedGame)

	_, err = svc.GetProfile(ctx, models.NewID())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Zero(t, stats.ReviewCount)
	assert.Nil(t, stats.AverageRating)
	assert.Empty(t, stats.MostPlayedGame)
}

func TestComputeStatsTieGoesToFirst(t *testing.T) {
	stats := ComputeStats([]models.Comment{
		{GameName: "A", Rating: 4, PlayTimeHours: 5},
		{GameName: "B", Rating: 2, PlayTimeHours: 5},
	})
	assert.Equal(t, "A", stats.MostPlayedGame)
	assert.Equal(t, 3.0, *stats.AverageRating)
}
