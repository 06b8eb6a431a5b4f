package service

import (
	"context"
	"strings"

	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/models"

	"gorm.io/gorm"
)

// UserInput carries the editable fields of a user.
type UserInput struct {
	Name  string
	Photo string
	About string
}

func (in UserInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("name is required")
	}
	return nil
}

// UserStats summarizes a user's reviews.
type UserStats struct {
	ReviewCount    int
	TotalPlayTime  float64
	AverageRating  *float64 // nil when the user has not rated anything
	MostPlayedGame string
}

// UserProfile is a user together with the documents it references.
type UserProfile struct {
	User      *models.User
	Favorites []models.Game
	Reviews   []models.Comment
	Stats     UserStats
}

type UserService struct {
	db          *gorm.DB
	maxAttempts int
}

func NewUserService(db *gorm.DB, maxAttempts int) *UserService {
	return &UserService{db: db, maxAttempts: maxAttempts}
}

func (s *UserService) CreateUser(ctx context.Context, in UserInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	user := &models.User{Name: strings.TrimSpace(in.Name), Photo: in.Photo, About: in.About}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, storeErr("create user", err)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at").Find(&users).Error; err != nil {
		return nil, storeErr("list users", err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return findUser(s.db.WithContext(ctx), id)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, in UserInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var user *models.User
	err := inTx(ctx, s.db, s.maxAttempts, func(tx *gorm.DB) error {
		var err error
		if user, err = findUser(tx, id); err != nil {
			return err
		}
		user.Name = strings.TrimSpace(in.Name)
		user.Photo = in.Photo
		user.About = in.About
		return storeErrOrNil("save user", database.SaveVersioned(tx, user))
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user only. Their embedded reviews on games stay behind.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return storeErr("delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetProfile resolves the user's favorites and reviews. Favorites pointing at deleted games
// are skipped. Reviews are read from the Comment rows by reviewer, not from the user's refs.
func (s *UserService) GetProfile(ctx context.Context, id string) (*UserProfile, error) {
	db := s.db.WithContext(ctx)
	user, err := findUser(db, id)
	if err != nil {
		return nil, err
	}

	favorites := []models.Game{}
	if len(user.Favorites) > 0 {
		var found []models.Game
		if err := db.Where("id IN ?", []string(user.Favorites)).Find(&found).Error; err != nil {
			return nil, storeErr("load favorites", err)
		}
		byID := make(map[string]models.Game, len(found))
		for _, g := range found {
			byID[g.ID] = g
		}
		for _, gameID := range user.Favorites {
			if g, ok := byID[gameID]; ok {
				favorites = append(favorites, g)
			}
		}
	}

	reviews := []models.Comment{}
	if err := db.Where("reviewer_id = ?", user.ID).Order("updated_at DESC").Find(&reviews).Error; err != nil {
		return nil, storeErr("load reviews", err)
	}

	return &UserProfile{User: user, Favorites: favorites, Reviews: reviews, Stats: ComputeStats(reviews)}, nil
}

// ComputeStats aggregates a user's Comment rows. Ties for the most played game go to the
// first row.
func ComputeStats(reviews []models.Comment) UserStats {
	stats := UserStats{ReviewCount: len(reviews)}
	if len(reviews) == 0 {
		return stats
	}

	ratingSum, mostPlayed := 0, -1.0
	for _, r := range reviews {
		stats.TotalPlayTime += r.PlayTimeHours
		ratingSum += r.Rating
		if r.PlayTimeHours > mostPlayed {
			mostPlayed = r.PlayTimeHours
			stats.MostPlayedGame = r.GameName
		}
	}
	avg := float64(ratingSum) / float64(len(reviews))
	stats.AverageRating = &avg
	return stats
}
