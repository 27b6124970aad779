package handlers

import (
	"net/http"

	"orderalone/services"

	"github.com/gin-gonic/gin"
)

const (
	defaultOrderLimit = 100
	maxOrderLimit     = 1000
)

type OrderHandler struct {
	orderService services.OrderServiceInterface
}

func NewOrderHandler(orderService services.OrderServiceInterface) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), userID, req.GameID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ScoreAnswer(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req services.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.orderService.ScoreAnswer(c.Request.Context(), userID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) ListCorrectOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	gameID, ok := parseID(c, "game_id", "game")
	if !ok {
		return
	}
	limit, err := parseLimit(c, defaultOrderLimit, maxOrderLimit)
	if err != nil {
		handleError(c, err)
		return
	}

	orders, err := h.orderService.ListCorrectOrders(c.Request.Context(), userID, gameID, limit)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
