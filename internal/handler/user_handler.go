package handler

import (
	"net/http"

	"gamereviews/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type UserInput struct {
	Name  string `json:"name" binding:"required" example:"ayse"`
	Photo string `json:"photo"`
	About string `json:"about"`
}

func (in UserInput) toService() service.UserInput {
	return service.UserInput{Name: in.Name, Photo: in.Photo, About: in.About}
}

// endregion

// region --- User Handlers ---

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   UserResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, newUserResponse(u))
	}
	c.JSON(http.StatusOK, response)
}

// CreateUser godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input body UserInput true "User Info"
// @Success      201  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var input UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.users.CreateUser(c.Request.Context(), input.toService())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newUserResponse(*user))
}

// GetUser godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  UserResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*user))
}

// UpdateUser godoc
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path  string     true  "User ID"
// @Param        input body  UserInput  true  "User Info"
// @Success      200  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [put]
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.users.UpdateUser(c.Request.Context(), id, input.toService())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*user))
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         users
// @Param        id   path  string  true  "User ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.users.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProfile godoc
// @Summary      Get a user's profile
// @Description  Returns the user with resolved favorite games, their reviews and review statistics.
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  ProfileResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	profile, err := h.users.GetProfile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProfileResponse(profile))
}

// endregion

// region --- Favorites Handlers ---

// AddFavorite godoc
// @Summary      Add a game to favorites
// @Description  Idempotent. The game must exist.
// @Tags         favorites
// @Produce      json
// @Param        id      path  string  true  "User ID"
// @Param        gameId  path  string  true  "Game ID"
// @Success      200  {object}  FavoritesResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/favorites/{gameId} [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	h.setFavorite(c, service.Present, "Added to favorites")
}

// RemoveFavorite godoc
// @Summary      Remove a game from favorites
// @Description  Idempotent. Ids of deleted games can still be removed.
// @Tags         favorites
// @Produce      json
// @Param        id      path  string  true  "User ID"
// @Param        gameId  path  string  true  "Game ID"
// @Success      200  {object}  FavoritesResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/favorites/{gameId} [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	h.setFavorite(c, service.Absent, "Removed from favorites")
}

func (h *Handler) setFavorite(c *gin.Context, desired service.Presence, message string) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	gameID, ok := pathID(c, "gameId")
	if !ok {
		return
	}
	user, err := h.favorites.SetFavorite(c.Request.Context(), userID, gameID, desired)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, FavoritesResponse{Message: message, Favorites: nonNil(user.Favorites)})
}

// endregion
