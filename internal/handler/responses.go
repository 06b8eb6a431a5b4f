package handler

import (
	"time"

	"gamereviews/backend/internal/models"
	"gamereviews/backend/internal/service"
)

// region --- DTOs ---

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"Game not found"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message" example:"Review saved"`
}

type GameResponse struct {
	ID            string                 `json:"id" example:"65f1c0ffee0123456789abcd"`
	Name          string                 `json:"name" example:"Hades"`
	Genres        []string               `json:"genres"`
	Photo         string                 `json:"photo"`
	Attributes    map[string]interface{} `json:"attributes,omitempty"`
	PlayTime      float64                `json:"playTime"`
	RatingEnabled bool                   `json:"ratingEnabled"`
	Comments      []models.GameComment   `json:"comments"`
	Ratings       []models.GameRating    `json:"ratings"`
	AverageRating *float64               `json:"averageRating"` // null when there are no ratings
	RatingCount   int                    `json:"ratingCount"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

func newGameResponse(game models.Game) GameResponse {
	resp := GameResponse{
		ID:            game.ID,
		Name:          game.Name,
		Genres:        nonNil(game.Genres),
		Photo:         game.Photo,
		Attributes:    game.Attributes,
		PlayTime:      game.PlayTime,
		RatingEnabled: game.RatingEnabled,
		Comments:      nonNil(game.Comments),
		Ratings:       nonNil(game.Ratings),
		RatingCount:   len(game.Ratings),
		CreatedAt:     game.CreatedAt,
		UpdatedAt:     game.UpdatedAt,
	}
	if avg, ok := game.AverageRating(); ok {
		resp.AverageRating = &avg
	}
	return resp
}

func newGameResponses(games []models.Game) []GameResponse {
	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	return response
}

type UserResponse struct {
	ID        string    `json:"id" example:"65f1c0ffee0123456789abce"`
	Name      string    `json:"name" example:"ayse"`
	Photo     string    `json:"photo"`
	About     string    `json:"about"`
	Favorites []string  `json:"favorites"`
	Reviews   []string  `json:"reviews"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Photo:     user.Photo,
		About:     user.About,
		Favorites: nonNil(user.Favorites),
		Reviews:   nonNil(user.Reviews),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type CommentResponse struct {
	ID            string    `json:"id"`
	ReviewerID    string    `json:"reviewerId"`
	GameID        string    `json:"gameId"`
	GameName      string    `json:"gameName"`
	Text          string    `json:"text"`
	Rating        int       `json:"rating"`
	PlayTimeHours float64   `json:"playTimeHours"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func newCommentResponse(c models.Comment) CommentResponse {
	return CommentResponse{
		ID:            c.ID,
		ReviewerID:    c.ReviewerID,
		GameID:        c.GameID,
		GameName:      c.GameName,
		Text:          c.Text,
		Rating:        c.Rating,
		PlayTimeHours: c.PlayTimeHours,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type StatsResponse struct {
	ReviewCount    int      `json:"reviewCount"`
	TotalPlayTime  float64  `json:"totalPlayTime"`
	AverageRating  *float64 `json:"averageRating"`
	MostPlayedGame string   `json:"mostPlayedGame"`
}

type ProfileResponse struct {
	User      UserResponse      `json:"user"`
	Favorites []GameResponse    `json:"favorites"`
	Reviews   []CommentResponse `json:"reviews"`
	Stats     StatsResponse     `json:"stats"`
}

func newProfileResponse(p *service.UserProfile) ProfileResponse {
	reviews := make([]CommentResponse, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		reviews = append(reviews, newCommentResponse(r))
	}
	return ProfileResponse{
		User:      newUserResponse(*p.User),
		Favorites: newGameResponses(p.Favorites),
		Reviews:   reviews,
		Stats: StatsResponse{
			ReviewCount:    p.Stats.ReviewCount,
			TotalPlayTime:  p.Stats.TotalPlayTime,
			AverageRating:  p.Stats.AverageRating,
			MostPlayedGame: p.Stats.MostPlayedGame,
		},
	}
}

// FavoritesResponse acknowledges a favorites change.
type FavoritesResponse struct {
	Message   string   `json:"message" example:"Added to favorites"`
	Favorites []string `json:"favorites"`
}

// SessionResponse carries a signed session token.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// endregion

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
