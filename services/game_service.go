package services

import (
	"context"
	"time"

	"orderalone/logger"
	"orderalone/models"
	"orderalone/monitoring"
	"orderalone/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type GameService struct {
	store       Store
	queries     GameQueries
	menus       MenuLookup
	orders      *OrderService
	leaderboard Leaderboard
	events      EventPublisher
	notifier    GameNotifier
	qr          QRGenerator
}

func NewGameService(store Store, queries GameQueries, menus MenuLookup, orders *OrderService, leaderboard Leaderboard, events EventPublisher, notifier GameNotifier, qr QRGenerator) *GameService {
	return &GameService{
		store:       store,
		queries:     queries,
		menus:       menus,
		orders:      orders,
		leaderboard: leaderboard,
		events:      events,
		notifier:    notifier,
		qr:          qr,
	}
}

type StartGameRequest struct {
	MenuID uint `json:"menu_id" binding:"required"`
}

type StartGameResponse struct {
	GameID uint          `json:"game_id"`
	Order  *models.Order `json:"order"`
}

type EndGameRequest struct {
	GameID uint `json:"game_id" binding:"required"`
}

type EndGameResponse struct {
	GameID uint `json:"game_id"`
	Score  int  `json:"score"`
}

// GameState is sent to websocket clients when they connect.
type GameState struct {
	GameID    uint      `json:"game_id"`
	MenuID    uint      `json:"menu_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// StartGame creates a game at score zero together with its first order.
func (s *GameService) StartGame(ctx context.Context, userID uint, req *StartGameRequest) (*StartGameResponse, error) {
	ctx, span := tracing.Tracer.Start(ctx, "GameService.StartGame")
	defer span.End()

	menu, err := s.menus.FindMenu(ctx, req.MenuID)
	if err != nil {
		return nil, err
	}

	game := &models.Game{
		UserID: userID,
		MenuID: menu.ID,
		Score:  0,
	}

	// The draw happens before anything is written so a broken catalog never
	// leaves an empty game behind.
	order, err := s.orders.buildOrder(game, menu)
	if err != nil {
		return nil, err
	}

	err = s.store.Transaction(ctx, func(tx Store) error {
		if err := tx.CreateGame(ctx, game); err != nil {
			return err
		}
		order.GameID = game.ID
		return tx.CreateOrder(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("game.id", int(game.ID)))

	monitoring.GamesStarted.Inc()
	monitoring.OrdersGenerated.Inc()

	if s.leaderboard != nil {
		if err := s.leaderboard.Record(ctx, game.ID, game.Score); err != nil {
			logger.Log.Warn("leaderboard insert failed", zap.Uint("game_id", game.ID), zap.Error(err))
		}
	}

	logger.Log.Info("game started",
		zap.Uint("game_id", game.ID),
		zap.Uint("user_id", userID),
		zap.Uint("menu_id", menu.ID))

	return &StartGameResponse{GameID: game.ID, Order: order}, nil
}

func (s *GameService) EndGame(ctx context.Context, userID, gameID uint) (*EndGameResponse, error) {
	game, err := s.CheckGameOwnership(ctx, gameID, userID)
	if err != nil {
		return nil, err
	}

	resp := &EndGameResponse{GameID: game.ID, Score: game.Score}

	if s.events != nil {
		event := GameEvent{
			Type:      "game_ended",
			GameID:    game.ID,
			UserID:    userID,
			Score:     game.Score,
			Timestamp: time.Now(),
		}
		if err := s.events.Publish(ctx, event); err != nil {
			logger.Log.Warn("publish game event failed", zap.String("type", event.Type), zap.Uint("game_id", game.ID), zap.Error(err))
		}
	}
	if s.notifier != nil {
		s.notifier.BroadcastToGame(game.ID, "game_ended", resp)
	}

	return resp, nil
}

func (s *GameService) ListUserGames(ctx context.Context, userID uint, limit int) ([]models.GameSummary, error) {
	return s.queries.ListUserGames(ctx, userID, limit)
}

// TopGames reads the ranking from the leaderboard and hydrates it from the
// database. The database ranking is used when the leaderboard is empty or
// unreachable.
func (s *GameService) TopGames(ctx context.Context, limit int) ([]models.GameSummary, error) {
	if s.leaderboard != nil {
		entries, err := s.leaderboard.Top(ctx, limit)
		if err != nil {
			logger.Log.Warn("leaderboard read failed, using database", zap.Error(err))
		} else if len(entries) > 0 {
			games, err := s.hydrate(ctx, entries)
			if err == nil {
				return games, nil
			}
			logger.Log.Warn("leaderboard hydrate failed, using database", zap.Error(err))
		}
	}
	return s.queries.TopGames(ctx, limit)
}

func (s *GameService) hydrate(ctx context.Context, entries []LeaderboardEntry) ([]models.GameSummary, error) {
	ids := make([]uint, len(entries))
	for i, e := range entries {
		ids[i] = e.GameID
	}

	summaries, err := s.queries.GameSummaries(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.GameSummary, len(summaries))
	for _, g := range summaries {
		byID[g.ID] = g
	}

	games := make([]models.GameSummary, 0, len(entries))
	for _, e := range entries {
		// deleted games can linger in the sorted set
		if g, ok := byID[e.GameID]; ok {
			games = append(games, g)
		}
	}
	return games, nil
}

func (s *GameService) BestGame(ctx context.Context, userID uint) (*models.GameSummary, error) {
	return s.queries.BestGame(ctx, userID)
}

// ShareCode renders a QR code pointing at the game's public result page.
func (s *GameService) ShareCode(ctx context.Context, userID, gameID uint) ([]byte, error) {
	game, err := s.CheckGameOwnership(ctx, gameID, userID)
	if err != nil {
		return nil, err
	}
	return s.qr.Generate(game.ID)
}

// CheckGameOwnership loads a game and fails with ErrGameForbidden unless it
// belongs to userID.
func (s *GameService) CheckGameOwnership(ctx context.Context, gameID, userID uint) (*models.Game, error) {
	game, err := s.store.FindGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.UserID != userID {
		return nil, ErrGameForbidden
	}
	return game, nil
}

// GetCurrentGameState is the snapshot a websocket client gets on connect.
func (s *GameService) GetCurrentGameState(ctx context.Context, gameID uint) (*GameState, error) {
	game, err := s.store.FindGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return &GameState{
		GameID:    game.ID,
		MenuID:    game.MenuID,
		Score:     game.Score,
		CreatedAt: game.CreatedAt,
	}, nil
}
