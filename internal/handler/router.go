package handler

import (
	"net/http"
	"slices"
	"time"

	"gamereviews/backend/internal/auth"
	"gamereviews/backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterOptions configures the engine built by NewRouter.
type RouterOptions struct {
	// AllowedOrigins lists CORS origins. Empty or containing "*" allows any origin.
	AllowedOrigins []string
}

// NewRouter wires the middleware chain and every API route.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog())
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	router.Use(auth.OptionalAuthMiddleware(h.sessionSecret))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		gameRoutes := api.Group("/games")
		{
			gameRoutes.GET("", h.ListGames)
			gameRoutes.POST("", h.CreateGame)
			gameRoutes.PUT("/enable-rating/:id", h.EnableRating)
			gameRoutes.PUT("/disable-rating/:id", h.DisableRating)
			gameRoutes.GET("/:id", h.GetGame)
			gameRoutes.PUT("/:id", h.UpdateGame)
			gameRoutes.DELETE("/:id", h.DeleteGame)
			gameRoutes.GET("/:id/events", h.StreamGameEvents)
			gameRoutes.POST("/:id/comment", h.SubmitReview)
			gameRoutes.DELETE("/:id/comment/:reviewerId", h.RetractReview)
		}

		userRoutes := api.Group("/users")
		{
			userRoutes.GET("", h.ListUsers)
			userRoutes.POST("", h.CreateUser)
			userRoutes.GET("/:id", h.GetUser)
			userRoutes.PUT("/:id", h.UpdateUser)
			userRoutes.DELETE("/:id", h.DeleteUser)
			userRoutes.GET("/:id/profile", h.GetProfile)
			userRoutes.POST("/:id/favorites/:gameId", h.AddFavorite)
			userRoutes.DELETE("/:id/favorites/:gameId", h.RemoveFavorite)
		}

		sessionRoutes := api.Group("/sessions")
		{
			sessionRoutes.POST("", h.CreateSession)
			sessionRoutes.GET("/me", auth.RequireSession(), h.GetSessionUser)
		}
	}
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
