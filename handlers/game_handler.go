package handlers

import (
	"net/http"

	"orderalone/logger"
	"orderalone/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultGameLimit = 100
	maxGameLimit     = 1000
	defaultTopLimit  = 10
	maxTopLimit      = 100
)

// GameStats reports live websocket connections for a game.
type GameStats interface {
	ConnectedClients(gameID uint) int
}

type GameHandler struct {
	gameService services.GameServiceInterface
	hub         GameStats
}

func NewGameHandler(gameService services.GameServiceInterface, hub GameStats) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		hub:         hub,
	}
}

func (h *GameHandler) StartGame(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.gameService.StartGame(c.Request.Context(), userID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *GameHandler) EndGame(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.EndGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.gameService.EndGame(c.Request.Context(), userID, req.GameID)
	if err != nil {
		handleError(c, err)
		return
	}

	if h.hub != nil {
		logger.Log.Info("game ended",
			zap.Uint("game_id", resp.GameID),
			zap.Int("score", resp.Score),
			zap.Int("watchers", h.hub.ConnectedClients(resp.GameID)))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *GameHandler) GetUserGames(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	limit, err := parseLimit(c, defaultGameLimit, maxGameLimit)
	if err != nil {
		handleError(c, err)
		return
	}

	games, err := h.gameService.ListUserGames(c.Request.Context(), userID, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

func (h *GameHandler) GetTopGames(c *gin.Context) {
	limit, err := parseLimit(c, defaultTopLimit, maxTopLimit)
	if err != nil {
		handleError(c, err)
		return
	}

	games, err := h.gameService.TopGames(c.Request.Context(), limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

func (h *GameHandler) GetBestGame(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	game, err := h.gameService.BestGame(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// GetShareCode renders a QR code PNG that links to the game.
func (h *GameHandler) GetShareCode(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseID(c, "id", "game")
	if !ok {
		return
	}

	png, err := h.gameService.ShareCode(c.Request.Context(), userID, gameID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
