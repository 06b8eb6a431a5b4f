package handler

import (
	"io"

	"gamereviews/backend/internal/hub"
	"gamereviews/backend/internal/logging"

	"github.com/gin-gonic/gin"
)

// eventBuffer is how many events a slow stream may fall behind before it misses some.
const eventBuffer = 16

// StreamGameEvents godoc
// @Summary      Follow a game's reviews
// @Description  Server-sent events for reviews submitted to or retracted from the game.
// @Tags         games
// @Produce      text/event-stream
// @Param        id   path  string  true  "Game ID"
// @Success      200  {string}  string  "event stream"
// @Failure      404  {object}  ErrorResponse
// @Router       /games/{id}/events [get]
func (h *Handler) StreamGameEvents(c *gin.Context) {
	gameID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := h.games.GetGame(c.Request.Context(), gameID); err != nil {
		respondError(c, err)
		return
	}

	client := make(hub.Client, eventBuffer)
	h.hub.Subscribe(gameID, client)
	defer h.hub.Unsubscribe(gameID, client)

	log := logging.Ctx(c.Request.Context())
	log.Debug().Str("game_id", gameID).Msg("event stream opened")

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("review", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
	log.Debug().Str("game_id", gameID).Msg("event stream closed")
}
