package handler

import (
	"time"

	"gamereviews/backend/internal/hub"
	"gamereviews/backend/internal/service"
)

// Handler serves the HTTP API on top of the services.
type Handler struct {
	games     *service.GameService
	users     *service.UserService
	reviews   *service.ReviewService
	favorites *service.FavoriteService
	hub       *hub.Hub

	sessionSecret []byte
	sessionTTL    time.Duration
}

// Deps groups what a Handler needs.
type Deps struct {
	Games         *service.GameService
	Users         *service.UserService
	Reviews       *service.ReviewService
	Favorites     *service.FavoriteService
	Hub           *hub.Hub
	SessionSecret []byte
	SessionTTL    time.Duration
}

func New(deps Deps) *Handler {
	return &Handler{
		games:         deps.Games,
		users:         deps.Users,
		reviews:       deps.Reviews,
		favorites:     deps.Favorites,
		hub:           deps.Hub,
		sessionSecret: deps.SessionSecret,
		sessionTTL:    deps.SessionTTL,
	}
}
