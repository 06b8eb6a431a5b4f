package service

import (
	"context"

	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/logging"
	"gamereviews/backend/internal/metrics"
	"gamereviews/backend/internal/models"

	"gorm.io/gorm"
)

// Presence is the desired membership of a game in a user's favorites.
type Presence int

const (
	Absent Presence = iota
	Present
)

func (p Presence) String() string {
	if p == Present {
		return "add"
	}
	return "remove"
}

type FavoriteService struct {
	db          *gorm.DB
	maxAttempts int
}

func NewFavoriteService(db *gorm.DB, maxAttempts int) *FavoriteService {
	return &FavoriteService{db: db, maxAttempts: maxAttempts}
}

// SetFavorite makes gameID present in or absent from the user's favorites. Both directions
// are idempotent. Adding requires the game to exist; removing does not, so dangling ids
// left behind by a deleted game can still be cleared.
func (s *FavoriteService) SetFavorite(ctx context.Context, userID, gameID string, desired Presence) (*models.User, error) {
	var user *models.User
	err := inTx(ctx, s.db, s.maxAttempts, func(tx *gorm.DB) error {
		var err error
		user, err = findUser(tx, userID)
		if err != nil {
			return err
		}

		var changed bool
		if desired == Present {
			if user.HasFavorite(gameID) {
				return nil
			}
			if _, err := findGame(tx, gameID); err != nil {
				return err
			}
			changed = user.AddFavorite(gameID)
		} else {
			changed = user.RemoveFavorite(gameID)
		}

		if !changed {
			return nil
		}
		if err := database.SaveVersioned(tx, user); err != nil {
			return storeErr("save user", err)
		}
		return nil
	})
	metrics.RecordFavoriteChange(desired.String(), Outcome(err))
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().Str("user_id", userID).Str("game_id", gameID).Str("action", desired.String()).Msg("favorites updated")
	return user, nil
}
