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
	"gorm.io/datatypes"
)

type OrderService struct {
	store       Store
	queries     GameQueries
	menus       MenuLookup
	rng         RandomSource
	leaderboard Leaderboard
	events      EventPublisher
	notifier    GameNotifier
}

// NewOrderService wires the scorer. leaderboard, events and notifier may be nil.
func NewOrderService(store Store, queries GameQueries, menus MenuLookup, leaderboard Leaderboard, events EventPublisher, notifier GameNotifier) *OrderService {
	return &OrderService{
		store:       store,
		queries:     queries,
		menus:       menus,
		rng:         DefaultSource,
		leaderboard: leaderboard,
		events:      events,
		notifier:    notifier,
	}
}

// SetRandomSource replaces the generator's source, mostly for tests.
func (s *OrderService) SetRandomSource(src RandomSource) {
	s.rng = src
}

type CreateOrderRequest struct {
	GameID uint `json:"game_id" binding:"required"`
}

type ScoreRequest struct {
	OrderID      uint     `json:"order_id" binding:"required"`
	GameID       uint     `json:"game_id" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	MenuName     string   `json:"menu_name" binding:"required"`
	ToppingNames []string `json:"topping_names"`
}

type ScoreResult struct {
	OrderID    uint           `json:"order_id"`
	Correct    bool           `json:"correct"`
	ScoreDelta int            `json:"score_delta"`
	Score      int            `json:"score"`
	Expected   ExpectedAnswer `json:"expected"`
}

// buildOrder draws a selection and snapshots the menu fields the order is
// later scored against.
func (s *OrderService) buildOrder(game *models.Game, menu *models.Menu) (*models.Order, error) {
	selection, err := GenerateSelection(s.rng, menu.Categories())
	if err != nil {
		return nil, err
	}

	level := menu.Level
	return &models.Order{
		MenuID:          menu.ID,
		GameID:          game.ID,
		MenuName:        menu.Name,
		MenuDescription: menu.Description,
		Level:           &level,
		Selection:       datatypes.NewJSONType(selection),
		Status:          models.OrderPending,
	}, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, userID, gameID uint) (*models.Order, error) {
	ctx, span := tracing.Tracer.Start(ctx, "OrderService.CreateOrder")
	defer span.End()
	span.SetAttributes(attribute.Int("game.id", int(gameID)))

	game, err := s.store.FindGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.UserID != userID {
		return nil, ErrGameForbidden
	}

	menu, err := s.menus.FindMenu(ctx, game.MenuID)
	if err != nil {
		return nil, err
	}

	order, err := s.buildOrder(game, menu)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	monitoring.OrdersGenerated.Inc()
	s.broadcast(game.ID, "order_created", order)
	return order, nil
}

// ScoreAnswer compares a guess with the order's selection and records the
// outcome. The order status change and the score increment commit together or
// not at all; a second attempt on the same order gets ErrAlreadyScored.
func (s *OrderService) ScoreAnswer(ctx context.Context, userID uint, req *ScoreRequest) (*ScoreResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "OrderService.ScoreAnswer")
	defer span.End()
	span.SetAttributes(
		attribute.Int("order.id", int(req.OrderID)),
		attribute.Int("game.id", int(req.GameID)),
	)

	order, err := s.store.FindOrder(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if order.GameID != req.GameID {
		return nil, ErrOwnershipMismatch
	}

	game, err := s.store.FindGame(ctx, req.GameID)
	if err != nil {
		return nil, err
	}
	if game.UserID != userID {
		return nil, ErrGameForbidden
	}
	if order.Terminal() {
		return nil, ErrAlreadyScored
	}

	selection := order.Selection.Data()
	correct := CheckAnswer(selection, Guess{
		Category:     req.Category,
		MenuName:     req.MenuName,
		ToppingNames: req.ToppingNames,
	})
	delta := ScoreDelta(order, correct)

	err = s.store.Transaction(ctx, func(tx Store) error {
		if err := tx.MarkOrderTerminal(ctx, order.ID, correct); err != nil {
			return err
		}
		if delta <= 0 {
			return nil
		}
		return tx.UpdateGameScore(ctx, game.ID, delta)
	})
	if err != nil {
		return nil, err
	}

	score := game.Score + delta
	if updated, err := s.store.FindGame(ctx, game.ID); err == nil {
		score = updated.Score
	} else {
		logger.Log.Warn("reload game after scoring", zap.Uint("game_id", game.ID), zap.Error(err))
	}

	outcome := "incorrect"
	if correct {
		outcome = "correct"
	}
	monitoring.AnswersScored.WithLabelValues(outcome).Inc()
	span.SetAttributes(attribute.Bool("order.correct", correct))

	result := &ScoreResult{
		OrderID:    order.ID,
		Correct:    correct,
		ScoreDelta: delta,
		Score:      score,
		Expected:   Expected(selection),
	}

	if delta > 0 && s.leaderboard != nil {
		if err := s.leaderboard.Record(ctx, game.ID, score); err != nil {
			logger.Log.Warn("leaderboard update failed", zap.Uint("game_id", game.ID), zap.Error(err))
		}
	}
	s.publish(ctx, GameEvent{
		Type:       "order_scored",
		GameID:     game.ID,
		OrderID:    order.ID,
		UserID:     userID,
		Correct:    correct,
		ScoreDelta: delta,
		Score:      score,
		Timestamp:  time.Now(),
	})
	s.broadcast(game.ID, "order_scored", result)

	return result, nil
}

// ListCorrectOrders returns the orders of a game that were answered correctly.
func (s *OrderService) ListCorrectOrders(ctx context.Context, userID, gameID uint, limit int) ([]models.Order, error) {
	game, err := s.store.FindGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.UserID != userID {
		return nil, ErrGameForbidden
	}
	return s.queries.ListCorrectOrders(ctx, gameID, limit)
}

func (s *OrderService) publish(ctx context.Context, event GameEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, event); err != nil {
		logger.Log.Warn("publish game event failed",
			zap.String("type", event.Type),
			zap.Uint("game_id", event.GameID),
			zap.Error(err))
	}
}

func (s *OrderService) broadcast(gameID uint, messageType string, payload interface{}) {
	if s.notifier == nil {
		return
	}
	s.notifier.BroadcastToGame(gameID, messageType, payload)
}
