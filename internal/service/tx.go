package service

import (
	"context"
	"errors"
	"fmt"

	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/models"

	"gorm.io/gorm"
)

// inTx runs fn in a transaction, starting over when a versioned write loses a race.
func inTx(ctx context.Context, db *gorm.DB, attempts int, fn func(tx *gorm.DB) error) error {
	if attempts < 1 {
		attempts = 1
	}
	var err error
	for i := 0; i < attempts; i++ {
		err = db.WithContext(ctx).Transaction(fn)
		if !errors.Is(err, database.ErrStaleVersion) {
			return err
		}
	}
	return fmt.Errorf("%w: gave up after %d attempts", ErrConflict, attempts)
}

func findGame(tx *gorm.DB, id string) (*models.Game, error) {
	var game models.Game
	if err := tx.First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
		}
		return nil, storeErr("load game", err)
	}
	return &game, nil
}

func findUser(tx *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
		}
		return nil, storeErr("load user", err)
	}
	return &user, nil
}

// findComment returns the Comment row for the pair, or nil when there is none.
func findComment(tx *gorm.DB, reviewerID, gameID string) (*models.Comment, error) {
	var comment models.Comment
	err := tx.Where("reviewer_id = ? AND game_id = ?", reviewerID, gameID).First(&comment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("load comment", err)
	}
	return &comment, nil
}
