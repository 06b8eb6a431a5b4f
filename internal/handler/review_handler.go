package handler

import (
	"net/http"

	"gamereviews/backend/internal/auth"
	"gamereviews/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ReviewInput is the body of a review submission. ReviewerID may be left out when the
// request carries a session.
type ReviewInput struct {
	ReviewerID    string  `json:"reviewerId" example:"65f1c0ffee0123456789abce"`
	Text          string  `json:"text" example:"Best roguelike I have played."`
	Rating        int     `json:"rating" binding:"required,min=1,max=5" example:"5"`
	PlayTimeHours float64 `json:"playTimeHours" binding:"min=0" example:"42.5"`
}

// endregion

// region --- Review Handlers ---

// SubmitReview godoc
// @Summary      Submit a review
// @Description  Creates or replaces the reviewer's comment and rating on the game.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id    path  string       true  "Game ID"
// @Param        input body  ReviewInput  true  "Review"
// @Success      201  {object}  CommentResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Reviews are disabled for this game"
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /games/{id}/comment [post]
func (h *Handler) SubmitReview(c *gin.Context) {
	gameID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ReviewerID == "" {
		if sessionUser, ok := auth.CurrentUserID(c); ok {
			input.ReviewerID = sessionUser
		}
	}

	comment, err := h.reviews.SubmitReview(c.Request.Context(), service.ReviewInput{
		ReviewerID:    input.ReviewerID,
		GameID:        gameID,
		Text:          input.Text,
		Rating:        input.Rating,
		PlayTimeHours: input.PlayTimeHours,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newCommentResponse(*comment))
}

// RetractReview godoc
// @Summary      Retract a review
// @Description  Removes the reviewer's comment and rating. Succeeds when there is nothing to remove.
// @Tags         reviews
// @Produce      json
// @Param        id          path  string  true  "Game ID"
// @Param        reviewerId  path  string  true  "Reviewer ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id}/comment/{reviewerId} [delete]
func (h *Handler) RetractReview(c *gin.Context) {
	gameID, ok := pathID(c, "id")
	if !ok {
		return
	}
	reviewerID, ok := pathID(c, "reviewerId")
	if !ok {
		return
	}
	if err := h.reviews.RetractReview(c.Request.Context(), gameID, reviewerID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Review removed"})
}

// endregion
