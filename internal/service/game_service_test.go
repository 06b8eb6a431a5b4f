package service

import (
	"context"
	"testing"

	"gamereviews/backend/internal/models"
	"gamereviews/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGame(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewGameService(db, 3)

	game, err := svc.CreateGame(context.Background(), GameInput{
		Name:       " Outer Wilds ",
		Genres:     []string{"exploration"},
		Photo:      "ow.png",
		Attributes: map[string]interface{}{"developer": "Mobius Digital", "about": "time loop"},
	})
	require.NoError(t, err)
	assert.True(t, models.IsValidID(game.ID))

	loaded := testutil.LoadGame(t, db, game.ID)
	assert.Equal(t, "Outer Wilds", loaded.Name)
	assert.True(t, loaded.RatingEnabled)
	assert.Empty(t, loaded.Comments)
	assert.Empty(t, loaded.Ratings)
	assert.Equal(t, "Mobius Digital", loaded.Attributes["developer"])
}

func TestCreateGameRequiresFields(t *testing.T) {
	svc := NewGameService(testutil.NewDB(t), 3)
	ctx := context.Background()

	for _, in := range []GameInput{
		{Genres: []string{"x"}, Photo: "p"},
		{Name: "n", Photo: "p"},
		{Name: "n", Genres: []string{"x"}},
	} {
		_, err := svc.CreateGame(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestListGamesFilters(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewGameService(db, 3)
	ctx := context.Background()
	testutil.CreateGame(t, db, "Dark Souls", "rpg", "action")
	testutil.CreateGame(t, db, "Dark Sky", "strategy")
	testutil.CreateGame(t, db, "Disco Elysium", "RPG")

	all, err := svc.ListGames(ctx, GameFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	dark, err := svc.ListGames(ctx, GameFilter{Query: "dark"})
	require.NoError(t, err)
	assert.Len(t, dark, 2)

	rpg, err := svc.ListGames(ctx, GameFilter{Genre: "rpg"})
	require.NoError(t, err)
	assert.Len(t, rpg, 2)

	both, err := svc.ListGames(ctx, GameFilter{Query: "dark", Genre: "rpg"})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Dark Souls", both[0].Name)
}

func TestUpdateGameKeepsReviews(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewGameService(db, 3)
	reviews := NewReviewService(db, nil, ReviewOptions{MaxAttempts: 3})
	ctx := context.Background()
	game := testutil.CreateGame(t, db, "Cuphead", "platformer")
	user := testutil.CreateUser(t, db, "arda")

	_, err := reviews.SubmitReview(ctx, ReviewInput{ReviewerID: user.ID, GameID: game.ID, Rating: 4, PlayTimeHours: 3})
	require.NoError(t, err)

	updated, err := svc.UpdateGame(ctx, game.ID, GameInput{Name: "Cuphead DLC", Genres: []string{"run and gun"}, Photo: "c.png"})
	require.NoError(t, err)
	assert.Equal(t, "Cuphead DLC", updated.Name)

	loaded := testutil.LoadGame(t, db, game.ID)
	assert.Equal(t, []string{"run and gun"}, []string(loaded.Genres))
	assert.Len(t, loaded.Ratings, 1)

	_, err = svc.UpdateGame(ctx, models.NewID(), GameInput{Name: "x", Genres: []string{"y"}, Photo: "z"})
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestDeleteGameLeavesOrphans(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewGameService(db, 3)
	reviews := NewReviewService(db, nil, ReviewOptions{MaxAttempts: 3})
	ctx := context.Background()
	game := testutil.CreateGame(t, db, "Journey", "adventure")
	user := testutil.CreateUser(t, db, "naz")

	_, err := reviews.SubmitReview(ctx, ReviewInput{ReviewerID: user.ID, GameID: game.ID, Rating: 5, PlayTimeHours: 2})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGame(ctx, game.ID))
	assert.ErrorIs(t, svc.DeleteGame(ctx, game.ID), ErrGameNotFound)
	_, err = svc.GetGame(ctx, game.ID)
	assert.ErrorIs(t, err, ErrGameNotFound)

	var n int64
	require.NoError(t, db.Model(&models.Comment{}).Where("game_id = ?", game.ID).Count(&n).Error)
	assert.EqualValues(t, 1, n)
	assert.Len(t, testutil.LoadUser(t, db, user.ID).Reviews, 1)
}

func TestRatingToggle(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewGameService(db, 3)
	ctx := context.Background()
	game := testutil.CreateGame(t, db, "Spelunky", "roguelike")

	disabled, err := svc.DisableRating(ctx, game.ID)
	require.NoError(t, err)
	assert.False(t, disabled.RatingEnabled)
	assert.False(t, testutil.LoadGame(t, db, game.ID).RatingEnabled)

	again, err := svc.DisableRating(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, disabled.Version, again.Version, "no write when already disabled")

	enabled, err := svc.EnableRating(ctx, game.ID)
	require.NoError(t, err)
	assert.True(t, enabled.RatingEnabled)

	_, err = svc.EnableRating(ctx, models.NewID())
	assert.ErrorIs(t, err, ErrGameNotFound)
}
