package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GameComment is a reviewer's comment embedded in a Game document.
type GameComment struct {
	ReviewerID    string  `json:"reviewerId"`
	Text          string  `json:"text"`
	PlayTimeHours float64 `json:"playTimeHours"`
}

// GameRating is a reviewer's rating embedded in a Game document.
type GameRating struct {
	ReviewerID string `json:"reviewerId"`
	Rating     int    `json:"rating"`
}

// Game represents a game in the catalog. Comments and Ratings hold at most one entry per reviewer.
type Game struct {
	ID            string                           `gorm:"primaryKey;size:24"`
	Name          string                           `gorm:"size:255;not null;index"`
	Genres        datatypes.JSONSlice[string]      `gorm:"not null"`
	Photo         string                           `gorm:"size:1024"`
	Attributes    datatypes.JSONMap
	PlayTime      float64                          `gorm:"not null;default:0"`
	RatingEnabled bool                             `gorm:"not null;default:true"`
	Comments      datatypes.JSONSlice[GameComment] `gorm:"not null"`
	Ratings       datatypes.JSONSlice[GameRating]  `gorm:"not null"`
	Version       int                              `gorm:"not null;default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = NewID()
	}
	if g.Version == 0 {
		g.Version = 1
	}
	if g.Genres == nil {
		g.Genres = datatypes.JSONSlice[string]{}
	}
	if g.Comments == nil {
		g.Comments = datatypes.JSONSlice[GameComment]{}
	}
	if g.Ratings == nil {
		g.Ratings = datatypes.JSONSlice[GameRating]{}
	}
	return nil
}

// UpsertComment replaces the reviewer's comment in place or appends a new one.
func (g *Game) UpsertComment(reviewerID, text string, playTimeHours float64) {
	for i := range g.Comments {
		if g.Comments[i].ReviewerID == reviewerID {
			g.Comments[i].Text = text
			g.Comments[i].PlayTimeHours = playTimeHours
			return
		}
	}
	g.Comments = append(g.Comments, GameComment{ReviewerID: reviewerID, Text: text, PlayTimeHours: playTimeHours})
}

// UpsertRating replaces the reviewer's rating in place or appends a new one.
func (g *Game) UpsertRating(reviewerID string, rating int) {
	for i := range g.Ratings {
		if g.Ratings[i].ReviewerID == reviewerID {
			g.Ratings[i].Rating = rating
			return
		}
	}
	g.Ratings = append(g.Ratings, GameRating{ReviewerID: reviewerID, Rating: rating})
}

// RemoveReviewer drops every comment and rating by reviewerID and reports whether anything changed.
func (g *Game) RemoveReviewer(reviewerID string) bool {
	comments := g.Comments[:0]
	for _, c := range g.Comments {
		if c.ReviewerID != reviewerID {
			comments = append(comments, c)
		}
	}
	ratings := g.Ratings[:0]
	for _, r := range g.Ratings {
		if r.ReviewerID != reviewerID {
			ratings = append(ratings, r)
		}
	}
	changed := len(comments) != len(g.Comments) || len(ratings) != len(g.Ratings)
	g.Comments, g.Ratings = comments, ratings
	return changed
}

// CommentBy returns the reviewer's embedded comment, if any.
func (g *Game) CommentBy(reviewerID string) (GameComment, bool) {
	for _, c := range g.Comments {
		if c.ReviewerID == reviewerID {
			return c, true
		}
	}
	return GameComment{}, false
}

// RatingBy returns the reviewer's embedded rating, if any.
func (g *Game) RatingBy(reviewerID string) (int, bool) {
	for _, r := range g.Ratings {
		if r.ReviewerID == reviewerID {
			return r.Rating, true
		}
	}
	return 0, false
}

// AverageRating returns the mean rating. ok is false when there are no ratings.
func (g *Game) AverageRating() (avg float64, ok bool) {
	if len(g.Ratings) == 0 {
		return 0, false
	}
	sum := 0
	for _, r := range g.Ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(g.Ratings)), true
}

// RecomputePlayTime sets PlayTime to the sum of the embedded comments' play time.
func (g *Game) RecomputePlayTime() {
	total := 0.0
	for _, c := range g.Comments {
		total += c.PlayTimeHours
	}
	g.PlayTime = total
}

func (g *Game) CurrentVersion() int { return g.Version }
func (g *Game) SetVersion(v int)    { g.Version = v }
