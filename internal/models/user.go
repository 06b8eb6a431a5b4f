package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User represents a reviewer in the system.
type User struct {
	ID        string                      `gorm:"primaryKey;size:24"`
	Name      string                      `gorm:"size:255;not null"`
	Photo     string                      `gorm:"size:1024"`
	About     string                      `gorm:"type:text"`
	Favorites datatypes.JSONSlice[string] `gorm:"not null"` // game ids
	Reviews   datatypes.JSONSlice[string] `gorm:"not null"` // comment ids
	Version   int                         `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = NewID()
	}
	if u.Version == 0 {
		u.Version = 1
	}
	if u.Favorites == nil {
		u.Favorites = datatypes.JSONSlice[string]{}
	}
	if u.Reviews == nil {
		u.Reviews = datatypes.JSONSlice[string]{}
	}
	return nil
}

// HasFavorite reports whether gameID is in the favorites set.
func (u *User) HasFavorite(gameID string) bool {
	return contains(u.Favorites, gameID)
}

// AddFavorite appends gameID unless present and reports whether the set changed.
func (u *User) AddFavorite(gameID string) bool {
	if contains(u.Favorites, gameID) {
		return false
	}
	u.Favorites = append(u.Favorites, gameID)
	return true
}

// RemoveFavorite filters gameID out of the favorites set and reports whether the set changed.
func (u *User) RemoveFavorite(gameID string) bool {
	var changed bool
	u.Favorites, changed = without(u.Favorites, gameID)
	return changed
}

// AddReview records a comment reference unless present.
func (u *User) AddReview(commentID string) bool {
	if contains(u.Reviews, commentID) {
		return false
	}
	u.Reviews = append(u.Reviews, commentID)
	return true
}

// RemoveReview drops a comment reference.
func (u *User) RemoveReview(commentID string) bool {
	var changed bool
	u.Reviews, changed = without(u.Reviews, commentID)
	return changed
}

func contains(ids datatypes.JSONSlice[string], id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func without(ids datatypes.JSONSlice[string], id string) (datatypes.JSONSlice[string], bool) {
	out := make(datatypes.JSONSlice[string], 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out, len(out) != len(ids)
}

func (u *User) CurrentVersion() int { return u.Version }
func (u *User) SetVersion(v int)    { u.Version = v }
