package routes

import (
	"errors"
	"net/http"
	"strconv"

	"orderalone/handlers"
	"orderalone/logger"
	"orderalone/middleware"
	"orderalone/monitoring"
	"orderalone/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Handlers bundles everything the router dispatches to.
type Handlers struct {
	Auth  *handlers.AuthHandler
	Menu  *handlers.MenuHandler
	Game  *handlers.GameHandler
	Order *handlers.OrderHandler
}

// GameWatchers registers websocket clients for a game.
type GameWatchers interface {
	RegisterClient(conn *websocket.Conn, gameID, userID uint) *services.Client
}

func newUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || allowed["*"] || allowed[origin]
		},
	}
}

func SetupRoutes(
	router *gin.Engine,
	h Handlers,
	hub GameWatchers,
	gameService services.GameServiceInterface,
	tokens middleware.TokenParser,
	allowedOrigins []string,
) {
	auth := middleware.AuthMiddleware(tokens)

	api := router.Group("/api")
	{
		// Public user routes
		user := api.Group("/user")
		{
			user.POST("/signup", h.Auth.Signup)
			user.POST("/login", h.Auth.Login)
			user.POST("/refresh", h.Auth.Refresh)
			user.GET("/me", auth, h.Auth.GetProfile)
		}

		menus := api.Group("/menu", auth)
		{
			menus.POST("", h.Menu.CreateMenu)
			menus.GET("", h.Menu.ListMenus)
			menus.GET("/summary", h.Menu.ListMenuSummaries)
			menus.POST("/images", h.Menu.UploadImage)
			menus.GET("/:id", h.Menu.GetMenuByID)
			menus.PUT("/:id", h.Menu.UpdateMenu)
			menus.DELETE("/:id", h.Menu.DeleteMenu)
		}

		games := api.Group("/game", auth)
		{
			games.POST("/start", h.Game.StartGame)
			games.POST("/end", h.Game.EndGame)
			games.GET("", h.Game.GetUserGames)
			games.GET("/top", h.Game.GetTopGames)
			games.GET("/best", h.Game.GetBestGame)
			games.GET("/:id/qrcode", h.Game.GetShareCode)
		}

		orders := api.Group("/order", auth)
		{
			orders.POST("", h.Order.CreateOrder)
			orders.POST("/score", h.Order.ScoreAnswer)
			orders.GET("/game/:game_id", h.Order.ListCorrectOrders)
		}
	}

	upgrader := newUpgrader(allowedOrigins)

	// Live feed for one game. Browsers cannot set headers on the upgrade
	// request, so the access token comes in ?token=.
	router.GET("/ws/games/:id", auth, func(c *gin.Context) {
		userID := c.GetUint(middleware.UserIDKey)
		gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil || gameID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
			return
		}

		if _, err := gameService.CheckGameOwnership(c.Request.Context(), uint(gameID), userID); err != nil {
			logger.Log.Warn("websocket access denied",
				zap.Uint64("game_id", gameID),
				zap.Uint("user_id", userID),
				zap.Error(err))
			status := http.StatusForbidden
			if errors.Is(err, services.ErrGameNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade has already written the error response.
			logger.Log.Warn("websocket upgrade failed", zap.Uint64("game_id", gameID), zap.Error(err))
			return
		}

		hub.RegisterClient(conn, uint(gameID), userID)
	})

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
