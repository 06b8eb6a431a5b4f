// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a migrated in-memory sqlite database closed at test end.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateGame inserts a rating-enabled game.
func CreateGame(t testing.TB, db *gorm.DB, name string, genres ...string) *models.Game {
	t.Helper()
	game := &models.Game{Name: name, Genres: genres, Photo: "https://img.example/" + name + ".png", RatingEnabled: true}
	require.NoError(t, db.Create(game).Error)
	return game
}

// CreateUser inserts a user.
func CreateUser(t testing.TB, db *gorm.DB, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name}
	require.NoError(t, db.Create(user).Error)
	return user
}

// LoadGame reads a game back from the store.
func LoadGame(t testing.TB, db *gorm.DB, id string) *models.Game {
	t.Helper()
	var game models.Game
	require.NoError(t, db.First(&game, "id = ?", id).Error)
	return &game
}

// LoadUser reads a user back from the store.
func LoadUser(t testing.TB, db *gorm.DB, id string) *models.User {
	t.Helper()
	var user models.User
	require.NoError(t, db.First(&user, "id = ?", id).Error)
	return &user
}
