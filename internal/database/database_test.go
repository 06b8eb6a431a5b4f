package database_test

import (
	"testing"

	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/models"
	"gamereviews/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := database.Open("mongo", "mongodb://localhost")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestGameDocumentRoundTrip(t *testing.T) {
	db := testutil.NewDB(t)

	game := &models.Game{
		Name:          "Hollow Knight",
		Genres:        []string{"metroidvania", "indie"},
		Photo:         "hk.png",
		Attributes:    map[string]any{"developer": "Team Cherry"},
		RatingEnabled: true,
	}
	require.NoError(t, db.Create(game).Error)
	assert.True(t, models.IsValidID(game.ID))
	assert.Equal(t, 1, game.Version)

	game.UpsertComment("65f1c0ffee0123456789abcd", "tough", 12)
	game.UpsertRating("65f1c0ffee0123456789abcd", 5)
	require.NoError(t, database.SaveVersioned(db, game))
	assert.Equal(t, 2, game.Version)

	loaded := testutil.LoadGame(t, db, game.ID)
	assert.Equal(t, []string{"metroidvania", "indie"}, []string(loaded.Genres))
	assert.Equal(t, "Team Cherry", loaded.Attributes["developer"])
	require.Len(t, loaded.Comments, 1)
	assert.Equal(t, "tough", loaded.Comments[0].Text)
	require.Len(t, loaded.Ratings, 1)
	assert.Equal(t, 5, loaded.Ratings[0].Rating)
	assert.Equal(t, 2, loaded.Version)
}

func TestSaveVersionedDetectsStaleWrite(t *testing.T) {
	db := testutil.NewDB(t)
	game := testutil.CreateGame(t, db, "Celeste")

	first := testutil.LoadGame(t, db, game.ID)
	second := testutil.LoadGame(t, db, game.ID)

	first.UpsertRating("65f1c0ffee0123456789abcd", 4)
	require.NoError(t, database.SaveVersioned(db, first))

	second.UpsertRating("65f1c0ffee0123456789abce", 2)
	err := database.SaveVersioned(db, second)
	assert.ErrorIs(t, err, database.ErrStaleVersion)
	assert.Equal(t, 1, second.Version, "version restored after a failed write")

	loaded := testutil.LoadGame(t, db, game.ID)
	require.Len(t, loaded.Ratings, 1)
	assert.Equal(t, 4, loaded.Ratings[0].Rating)
}

func TestCommentPairIsUnique(t *testing.T) {
	db := testutil.NewDB(t)

	first := &models.Comment{ReviewerID: "r", GameID: "g", Rating: 3}
	require.NoError(t, db.Create(first).Error)

	dup := &models.Comment{ReviewerID: "r", GameID: "g", Rating: 4}
	assert.Error(t, db.Create(dup).Error)
}
