package handler

import (
	"net/http"

	"gamereviews/backend/internal/auth"
	"gamereviews/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type SessionInput struct {
	UserID string `json:"userId" binding:"required" example:"65f1c0ffee0123456789abce"`
}

// CreateSession godoc
// @Summary      Start a session
// @Description  Issues a signed session token for an existing user.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        input body SessionInput true "User"
// @Success      201  {object}  SessionResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions [post]
func (h *Handler) CreateSession(c *gin.Context) {
	var input SessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.users.GetUser(c.Request.Context(), input.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := jwt.GenerateToken(h.sessionSecret, user.ID, h.sessionTTL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, SessionResponse{Token: token, User: newUserResponse(*user)})
}

// GetSessionUser godoc
// @Summary      Current session user
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /sessions/me [get]
func (h *Handler) GetSessionUser(c *gin.Context) {
	userID, _ := auth.CurrentUserID(c)
	user, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*user))
}
