package handler

import (
	"context"
	"net/http"

	"gamereviews/backend/internal/models"
	"gamereviews/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type GameInput struct {
	Name       string                 `json:"name" binding:"required" example:"Hades"`
	Genres     []string               `json:"genres" binding:"required,min=1"`
	Photo      string                 `json:"photo" binding:"required" example:"https://img.example/hades.png"`
	Attributes map[string]interface{} `json:"attributes"`
}

func (in GameInput) toService() service.GameInput {
	return service.GameInput{Name: in.Name, Genres: in.Genres, Photo: in.Photo, Attributes: in.Attributes}
}

// endregion

// region --- Catalog Handlers ---

// ListGames godoc
// @Summary      List games
// @Description  Lists the catalog, optionally filtered by a name search and a genre.
// @Tags         games
// @Produce      json
// @Param        q      query  string  false  "Case-insensitive name search"
// @Param        genre  query  string  false  "Genre filter"
// @Success      200  {array}   GameResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func (h *Handler) ListGames(c *gin.Context) {
	games, err := h.games.ListGames(c.Request.Context(), service.GameFilter{
		Query: c.Query("q"),
		Genre: c.Query("genre"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponses(games))
}

// CreateGame godoc
// @Summary      Create a new game
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.games.CreateGame(c.Request.Context(), input.toService())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newGameResponse(*game))
}

// GetGame godoc
// @Summary      Get a game
// @Description  Returns a game with its comments, ratings and average rating.
// @Tags         games
// @Produce      json
// @Param        id   path      string  true  "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id} [get]
func (h *Handler) GetGame(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	game, err := h.games.GetGame(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        id    path  string     true  "Game ID"
// @Param        input body  GameInput  true  "Game Info"
// @Success      200  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /games/{id} [put]
func (h *Handler) UpdateGame(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.games.UpdateGame(c.Request.Context(), id, input.toService())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*game))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Tags         games
// @Param        id   path  string  true  "Game ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.games.DeleteGame(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// EnableRating godoc
// @Summary      Enable reviews for a game
// @Tags         games
// @Produce      json
// @Param        id   path      string  true  "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /games/enable-rating/{id} [put]
func (h *Handler) EnableRating(c *gin.Context) {
	h.setRating(c, h.games.EnableRating)
}

// DisableRating godoc
// @Summary      Disable reviews for a game
// @Description  New reviews are rejected with 403 until rating is enabled again.
// @Tags         games
// @Produce      json
// @Param        id   path      string  true  "Game ID"
// @Success      200  {object}  GameResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /games/disable-rating/{id} [put]
func (h *Handler) DisableRating(c *gin.Context) {
	h.setRating(c, h.games.DisableRating)
}

func (h *Handler) setRating(c *gin.Context, toggle func(ctx context.Context, id string) (*models.Game, error)) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	game, err := toggle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(*game))
}

// endregion
