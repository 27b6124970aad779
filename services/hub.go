package services

import (
	"context"
	"encoding/json"
	"sync"

	"orderalone/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// GameStateProvider supplies the snapshot a client receives on connect.
type GameStateProvider interface {
	GetCurrentGameState(ctx context.Context, gameID uint) (*GameState, error)
}

// Hub fans game events out to the websocket clients watching that game.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	games      GameStateProvider
}

type Client struct {
	hub    *Hub
	id     string
	socket *websocket.Conn
	send   chan []byte
	gameID uint
	userID uint
}

type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

var _ GameNotifier = (*Hub)(nil)

func NewHub(games GameStateProvider) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		games:      games,
	}
}

// SetGameStateProvider must be called before Run.
func (h *Hub) SetGameStateProvider(games GameStateProvider) {
	h.games = games
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			logger.Log.Debug("websocket client registered",
				zap.String("client_id", client.id),
				zap.Uint("game_id", client.gameID),
				zap.Int("total_clients", total))
			go h.SendGameStateSync(client)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				h.removeLocked(client)
			}
			h.mutex.Unlock()
		}
	}
}

// removeLocked drops a client; h.mutex must be held for writing.
func (h *Hub) removeLocked(client *Client) {
	delete(h.clients, client)
	close(client.send)
	logger.Log.Debug("websocket client unregistered",
		zap.String("client_id", client.id),
		zap.Uint("game_id", client.gameID))
}

func (h *Hub) BroadcastToGame(gameID uint, messageType string, payload interface{}) {
	data, err := json.Marshal(Message{Type: messageType, Payload: payload})
	if err != nil {
		logger.Log.Error("marshal websocket message", zap.String("type", messageType), zap.Error(err))
		return
	}

	h.mutex.Lock()
	sent := 0
	for client := range h.clients {
		if client.gameID != gameID {
			continue
		}
		select {
		case client.send <- data:
			sent++
		default:
			// slow consumer
			h.removeLocked(client)
		}
	}
	h.mutex.Unlock()

	logger.Log.Debug("websocket broadcast",
		zap.String("type", messageType),
		zap.Uint("game_id", gameID),
		zap.Int("clients", sent))
}

func (h *Hub) SendGameStateSync(client *Client) {
	if h.games == nil {
		return
	}
	state, err := h.games.GetCurrentGameState(context.Background(), client.gameID)
	if err != nil {
		logger.Log.Warn("load game state for websocket client",
			zap.String("client_id", client.id),
			zap.Uint("game_id", client.gameID),
			zap.Error(err))
		return
	}

	data, err := json.Marshal(Message{Type: "game_state_sync", Payload: state})
	if err != nil {
		logger.Log.Error("marshal game state", zap.Error(err))
		return
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[client]; !ok {
		return
	}
	select {
	case client.send <- data:
	default:
		h.removeLocked(client)
	}
}

// ConnectedClients counts the clients watching gameID.
func (h *Hub) ConnectedClients(gameID uint) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	n := 0
	for client := range h.clients {
		if client.gameID == gameID {
			n++
		}
	}
	return n
}

func (h *Hub) RegisterClient(conn *websocket.Conn, gameID, userID uint) *Client {
	client := &Client{
		hub:    h,
		id:     uuid.NewString(),
		socket: conn,
		send:   make(chan []byte, 256),
		gameID: gameID,
		userID: userID,
	}

	h.register <- client

	go client.writePump()
	go client.readPump()

	return client
}

func (h *Hub) UnregisterClient(client *Client) {
	h.unregister <- client
}

func (c *Client) readPump() {
	defer func() {
		c.hub.UnregisterClient(c)
		c.socket.Close()
	}()

	for {
		_, message, err := c.socket.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.Warn("websocket read error", zap.String("client_id", c.id), zap.Error(err))
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(message, &msg); err != nil {
			logger.Log.Debug("ignoring malformed websocket message", zap.String("client_id", c.id), zap.Error(err))
			continue
		}

		c.handleMessage(msg)
	}
}

func (c *Client) writePump() {
	defer c.socket.Close()

	for message := range c.send {
		w, err := c.socket.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		w.Write(message)
		if err := w.Close(); err != nil {
			return
		}
	}
	c.socket.WriteMessage(websocket.CloseMessage, []byte{})
}

func (c *Client) handleMessage(msg Message) {
	switch msg.Type {
	case "ping":
		data, _ := json.Marshal(Message{Type: "pong", Payload: "pong"})
		c.hub.mutex.Lock()
		if _, ok := c.hub.clients[c]; ok {
			select {
			case c.send <- data:
			default:
			}
		}
		c.hub.mutex.Unlock()

	case "request_game_state":
		c.hub.SendGameStateSync(c)

	default:
		logger.Log.Debug("unknown websocket message type",
			zap.String("type", msg.Type),
			zap.String("client_id", c.id),
			zap.Uint("game_id", c.gameID))
	}
}
