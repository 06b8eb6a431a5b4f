package service

import (
	"context"
	"strings"

	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/logging"
	"gamereviews/backend/internal/metrics"
	"gamereviews/backend/internal/models"

	"gorm.io/gorm"
)

// Feed event types published after a review write commits.
const (
	EventReviewSubmitted = "review.submitted"
	EventReviewRetracted = "review.retracted"
)

// Publisher receives review events per game.
type Publisher interface {
	Publish(gameID, eventType string, payload interface{})
}

// ReviewInput is one reviewer's comment, rating and play time for a game.
type ReviewInput struct {
	ReviewerID    string
	GameID        string
	Text          string
	Rating        int
	PlayTimeHours float64
}

// ReviewOptions tunes the review service.
type ReviewOptions struct {
	// MinPlayHours is the play time a review must report. Zero disables the gate.
	MinPlayHours float64
	// MaxAttempts bounds retries after a version conflict.
	MaxAttempts int
}

// ReviewService keeps a review consistent across the Game document, the Comment row
// and the reviewer's User document.
type ReviewService struct {
	db        *gorm.DB
	publisher Publisher
	opts      ReviewOptions
}

func NewReviewService(db *gorm.DB, publisher Publisher, opts ReviewOptions) *ReviewService {
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	return &ReviewService{db: db, publisher: publisher, opts: opts}
}

func (s *ReviewService) validate(in ReviewInput) error {
	if !models.IsValidID(in.ReviewerID) {
		return invalid("reviewer id %q", in.ReviewerID)
	}
	if !models.IsValidID(in.GameID) {
		return invalid("game id %q", in.GameID)
	}
	if in.Rating < 1 || in.Rating > 5 {
		return invalid("rating must be between 1 and 5, got %d", in.Rating)
	}
	if in.PlayTimeHours < 0 {
		return invalid("play time must not be negative")
	}
	if in.PlayTimeHours < s.opts.MinPlayHours {
		return ErrPlayTimeTooLow
	}
	return nil
}

// SubmitReview upserts the reviewer's comment and rating on the game, the matching Comment
// row and the reviewer's reference to it. All writes commit together or not at all.
func (s *ReviewService) SubmitReview(ctx context.Context, in ReviewInput) (*models.Comment, error) {
	in.Text = strings.TrimSpace(in.Text)

	var comment *models.Comment
	err := s.validate(in)
	if err == nil {
		err = inTx(ctx, s.db, s.opts.MaxAttempts, func(tx *gorm.DB) error {
			var txErr error
			comment, txErr = s.submit(tx, in)
			return txErr
		})
	}
	metrics.RecordReviewSubmission(Outcome(err))
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("game_id", in.GameID).Str("reviewer_id", in.ReviewerID).Msg("review rejected")
		return nil, err
	}

	logging.Ctx(ctx).Info().Str("game_id", in.GameID).Str("reviewer_id", in.ReviewerID).Int("rating", in.Rating).Msg("review submitted")
	if s.publisher != nil {
		s.publisher.Publish(in.GameID, EventReviewSubmitted, comment)
	}
	return comment, nil
}

func (s *ReviewService) submit(tx *gorm.DB, in ReviewInput) (*models.Comment, error) {
	game, err := findGame(tx, in.GameID)
	if err != nil {
		return nil, err
	}
	user, err := findUser(tx, in.ReviewerID)
	if err != nil {
		return nil, err
	}
	if !game.RatingEnabled {
		return nil, ErrReviewsDisabled
	}

	game.UpsertComment(in.ReviewerID, in.Text, in.PlayTimeHours)
	game.UpsertRating(in.ReviewerID, in.Rating)
	game.RecomputePlayTime()
	// The game row is written first: a concurrent submit for the same game waits on it
	// and then fails its version check instead of racing on the Comment insert.
	if err := database.SaveVersioned(tx, game); err != nil {
		return nil, storeErr("save game", err)
	}

	comment, err := findComment(tx, in.ReviewerID, in.GameID)
	if err != nil {
		return nil, err
	}
	write := tx.Save
	if comment == nil {
		comment = &models.Comment{ReviewerID: in.ReviewerID, GameID: in.GameID}
		write = tx.Create
	}
	comment.GameName = game.Name
	comment.Text = in.Text
	comment.Rating = in.Rating
	comment.PlayTimeHours = in.PlayTimeHours
	if err := write(comment).Error; err != nil {
		return nil, storeErr("save comment", err)
	}

	if user.AddReview(comment.ID) {
		if err := database.SaveVersioned(tx, user); err != nil {
			return nil, storeErr("save user", err)
		}
	}
	return comment, nil
}

// RetractReview removes the reviewer's review from all three places. Retracting a review
// that does not exist succeeds; a missing game does not.
func (s *ReviewService) RetractReview(ctx context.Context, gameID, reviewerID string) error {
	var removed bool
	err := inTx(ctx, s.db, s.opts.MaxAttempts, func(tx *gorm.DB) error {
		var txErr error
		removed, txErr = s.retract(tx, gameID, reviewerID)
		return txErr
	})
	metrics.RecordReviewRetraction(Outcome(err))
	if err != nil {
		return err
	}

	if removed {
		logging.Ctx(ctx).Info().Str("game_id", gameID).Str("reviewer_id", reviewerID).Msg("review retracted")
		if s.publisher != nil {
			s.publisher.Publish(gameID, EventReviewRetracted, map[string]string{"gameId": gameID, "reviewerId": reviewerID})
		}
	}
	return nil
}

func (s *ReviewService) retract(tx *gorm.DB, gameID, reviewerID string) (bool, error) {
	game, err := findGame(tx, gameID)
	if err != nil {
		return false, err
	}

	removed := game.RemoveReviewer(reviewerID)
	if removed {
		game.RecomputePlayTime()
		if err := database.SaveVersioned(tx, game); err != nil {
			return false, storeErr("save game", err)
		}
	}

	comment, err := findComment(tx, reviewerID, gameID)
	if err != nil {
		return false, err
	}
	if comment == nil {
		return removed, nil
	}
	if err := tx.Delete(comment).Error; err != nil {
		return false, storeErr("delete comment", err)
	}

	// The reviewer may have been deleted already; the game side is cleaned up regardless.
	var user models.User
	res := tx.Limit(1).Find(&user, "id = ?", reviewerID)
	if res.Error != nil {
		return false, storeErr("load user", res.Error)
	}
	if res.RowsAffected > 0 && user.RemoveReview(comment.ID) {
		if err := database.SaveVersioned(tx, &user); err != nil {
			return false, storeErr("save user", err)
		}
	}
	return true, nil
}
