package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment is the standalone review record. There is at most one row per (ReviewerID, GameID).
type Comment struct {
	ID            string  `gorm:"primaryKey;size:24"`
	ReviewerID    string  `gorm:"size:24;not null;uniqueIndex:idx_comments_reviewer_game"`
	GameID        string  `gorm:"size:24;not null;uniqueIndex:idx_comments_reviewer_game;index"`
	GameName      string  `gorm:"size:255"` // snapshot taken at write time
	Text          string  `gorm:"type:text"`
	Rating        int     `gorm:"not null"`
	PlayTimeHours float64 `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}
