package service

import (
	"context"
	"strings"

	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/models"

	"gorm.io/gorm"
)

// GameInput carries the editable fields of a game.
type GameInput struct {
	Name       string
	Genres     []string
	Photo      string
	Attributes map[string]interface{}
}

func (in GameInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name is required")
	}
	if len(in.Genres) == 0 {
		return invalid("at least one genre is required")
	}
	if strings.TrimSpace(in.Photo) == "" {
		return invalid("photo is required")
	}
	return nil
}

// GameFilter narrows ListGames. Empty fields match everything.
type GameFilter struct {
	Query string
	Genre string
}

type GameService struct {
	db          *gorm.DB
	maxAttempts int
}

func NewGameService(db *gorm.DB, maxAttempts int) *GameService {
	return &GameService{db: db, maxAttempts: maxAttempts}
}

// CreateGame adds a game with reviews enabled and no comments or ratings.
func (s *GameService) CreateGame(ctx context.Context, in GameInput) (*models.Game, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	game := &models.Game{
		Name:          strings.TrimSpace(in.Name),
		Genres:        in.Genres,
		Photo:         in.Photo,
		Attributes:    in.Attributes,
		RatingEnabled: true,
	}
	if err := s.db.WithContext(ctx).Create(game).Error; err != nil {
		return nil, storeErr("create game", err)
	}
	return game, nil
}

func (s *GameService) ListGames(ctx context.Context, filter GameFilter) ([]models.Game, error) {
	query := s.db.WithContext(ctx).Order("created_at")
	if q := strings.TrimSpace(filter.Query); q != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	var games []models.Game
	if err := query.Find(&games).Error; err != nil {
		return nil, storeErr("list games", err)
	}
	if filter.Genre == "" {
		return games, nil
	}

	// Genres live in a JSON column whose query syntax differs per driver; filter here.
	matched := games[:0]
	for _, g := range games {
		for _, genre := range g.Genres {
			if strings.EqualFold(genre, filter.Genre) {
				matched = append(matched, g)
				break
			}
		}
	}
	return matched, nil
}

func (s *GameService) GetGame(ctx context.Context, id string) (*models.Game, error) {
	return findGame(s.db.WithContext(ctx), id)
}

// UpdateGame replaces the editable fields of a game. Reviews are left alone; existing Comment
// rows keep the name they were written with.
func (s *GameService) UpdateGame(ctx context.Context, id string, in GameInput) (*models.Game, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var game *models.Game
	err := inTx(ctx, s.db, s.maxAttempts, func(tx *gorm.DB) error {
		var err error
		if game, err = findGame(tx, id); err != nil {
			return err
		}
		game.Name = strings.TrimSpace(in.Name)
		game.Genres = in.Genres
		game.Photo = in.Photo
		game.Attributes = in.Attributes
		return storeErrOrNil("save game", database.SaveVersioned(tx, game))
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// DeleteGame removes the game only. Comment rows and user references to it stay behind.
func (s *GameService) DeleteGame(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Game{}, "id = ?", id)
	if res.Error != nil {
		return storeErr("delete game", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}

// EnableRating lets the game accept reviews again.
func (s *GameService) EnableRating(ctx context.Context, id string) (*models.Game, error) {
	return s.setRatingEnabled(ctx, id, true)
}

// DisableRating makes SubmitReview reject new reviews for the game.
func (s *GameService) DisableRating(ctx context.Context, id string) (*models.Game, error) {
	return s.setRatingEnabled(ctx, id, false)
}

func (s *GameService) setRatingEnabled(ctx context.Context, id string, enabled bool) (*models.Game, error) {
	var game *models.Game
	err := inTx(ctx, s.db, s.maxAttempts, func(tx *gorm.DB) error {
		var err error
		if game, err = findGame(tx, id); err != nil {
			return err
		}
		if game.RatingEnabled == enabled {
			return nil
		}
		game.RatingEnabled = enabled
		return storeErrOrNil("save game", database.SaveVersioned(tx, game))
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

func storeErrOrNil(op string, err error) error {
	if err == nil {
		return nil
	}
	return storeErr(op, err)
}
