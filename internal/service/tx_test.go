package service

import (
	"context"
	"errors"
	"testing"

	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestInTxRetriesOnStaleVersion(t *testing.T) {
	db := testutil.NewDB(t)

	calls := 0
	err := inTx(context.Background(), db, 3, func(tx *gorm.DB) error {
		calls++
		if calls < 3 {
			return storeErr("save game", database.ErrStaleVersion)
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestInTxGivesUpWithConflict(t *testing.T) {
	db := testutil.NewDB(t)

	calls := 0
	err := inTx(context.Background(), db, 2, func(tx *gorm.DB) error {
		calls++
		return database.ErrStaleVersion
	})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "conflict", Outcome(err))
}

func TestInTxDoesNotRetryOtherErrors(t *testing.T) {
	db := testutil.NewDB(t)
	boom := errors.New("boom")

	calls := 0
	err := inTx(context.Background(), db, 5, func(tx *gorm.DB) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestStoreErrWrapsPersistence(t *testing.T) {
	err := storeErr("save user", errors.New("disk full"))
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Contains(t, err.Error(), "save user: disk full")
	assert.Equal(t, "error", Outcome(err))

	assert.Same(t, database.ErrStaleVersion, storeErr("x", database.ErrStaleVersion))
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "invalid", Outcome(ErrPlayTimeTooLow))
	assert.Equal(t, "invalid", Outcome(invalid("rating")))
	assert.Equal(t, "not_found", Outcome(ErrUserNotFound))
	assert.Equal(t, "disabled", Outcome(ErrReviewsDisabled))
}
