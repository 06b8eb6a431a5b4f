package service

import (
	"errors"
	"fmt"

	"gamereviews/backend/internal/database"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrPlayTimeTooLow  = errors.New("not enough play time to review this game")
	ErrReviewsDisabled = errors.New("rating and comments are disabled for this game")
	ErrConflict        = errors.New("document was modified concurrently, try again")
	ErrPersistence     = errors.New("persistence failure")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// storeErr wraps a store failure. Version conflicts pass through untouched so callers can retry.
func storeErr(op string, err error) error {
	if errors.Is(err, database.ErrStaleVersion) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

// Outcome classifies an operation result for metrics labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrPlayTimeTooLow):
		return "invalid"
	case errors.Is(err, ErrGameNotFound), errors.Is(err, ErrUserNotFound):
		return "not_found"
	case errors.Is(err, ErrReviewsDisabled):
		return "disabled"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
