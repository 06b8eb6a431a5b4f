package database

import (
	"errors"

	"gorm.io/gorm"
)

// ErrStaleVersion is returned when a row changed since it was read.
var ErrStaleVersion = errors.New("stale document version")

// Versioned is implemented by documents carrying an optimistic-lock counter.
type Versioned interface {
	CurrentVersion() int
	SetVersion(v int)
}

// SaveVersioned writes every column of doc, guarded by the version it was read at,
// and bumps the counter. A row that moved on in the meantime yields ErrStaleVersion
// and leaves doc's version untouched.
func SaveVersioned(tx *gorm.DB, doc Versioned) error {
	read := doc.CurrentVersion()
	doc.SetVersion(read + 1)

	res := tx.Model(doc).Where("version = ?", read).Select("*").Omit("created_at").Updates(doc)
	if res.Error != nil {
		doc.SetVersion(read)
		return res.Error
	}
	if res.RowsAffected == 0 {
		doc.SetVersion(read)
		return ErrStaleVersion
	}
	return nil
}
