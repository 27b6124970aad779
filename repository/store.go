package repository

import (
	"context"
	"errors"
	"time"

	"orderalone/models"
	"orderalone/services"

	"gorm.io/gorm"
)

// GormStore persists games and orders and runs the scoring transaction.
type GormStore struct {
	DB *gorm.DB
}

var (
	_ services.Store       = (*GormStore)(nil)
	_ services.GameQueries = (*GormStore)(nil)
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func notFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

func (s *GormStore) FindMenu(ctx context.Context, id uint) (*models.Menu, error) {
	var menu models.Menu
	if err := s.DB.WithContext(ctx).First(&menu, id).Error; err != nil {
		return nil, notFound(err, services.ErrMenuNotFound)
	}
	return &menu, nil
}

func (s *GormStore) FindGame(ctx context.Context, id uint) (*models.Game, error) {
	var game models.Game
	if err := s.DB.WithContext(ctx).First(&game, id).Error; err != nil {
		return nil, notFound(err, services.ErrGameNotFound)
	}
	return &game, nil
}

func (s *GormStore) FindOrder(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, notFound(err, services.ErrOrderNotFound)
	}
	return &order, nil
}

func (s *GormStore) CreateGame(ctx context.Context, game *models.Game) error {
	return s.DB.WithContext(ctx).Create(game).Error
}

func (s *GormStore) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.DB.WithContext(ctx).Create(order).Error
}

// UpdateGameScore increments in SQL so concurrent writers never lose points.
func (s *GormStore) UpdateGameScore(ctx context.Context, gameID uint, delta int) error {
	result := s.DB.WithContext(ctx).Model(&models.Game{}).
		Where("id = ?", gameID).
		Update("score", gorm.Expr("score + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return services.ErrGameNotFound
	}
	return nil
}

// MarkOrderTerminal is a compare-and-swap on status: only a pending order
// moves, so at most one concurrent scorer wins.
func (s *GormStore) MarkOrderTerminal(ctx context.Context, orderID uint, correct bool) error {
	status := models.OrderIncorrect
	if correct {
		status = models.OrderCorrect
	}

	db := s.DB.WithContext(ctx)
	result := db.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, models.OrderPending).
		Updates(map[string]interface{}{
			"status":     status,
			"is_correct": correct,
			"scored_at":  time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&models.Order{}).Where("id = ?", orderID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return services.ErrOrderNotFound
	}
	return services.ErrAlreadyScored
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx services.Store) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{DB: tx})
	})
}

func (s *GormStore) summaries(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).
		Table("games").
		Select("games.id, games.user_id, games.menu_id, games.score, games.created_at, users.name AS user_name").
		Joins("JOIN users ON users.id = games.user_id").
		Where("games.deleted_at IS NULL")
}

func (s *GormStore) ListUserGames(ctx context.Context, userID uint, limit int) ([]models.GameSummary, error) {
	var games []models.GameSummary
	err := s.summaries(ctx).
		Where("games.user_id = ?", userID).
		Order("games.created_at DESC").
		Limit(limit).
		Scan(&games).Error
	return games, err
}

func (s *GormStore) TopGames(ctx context.Context, limit int) ([]models.GameSummary, error) {
	var games []models.GameSummary
	err := s.summaries(ctx).
		Order("games.score DESC, games.id ASC").
		Limit(limit).
		Scan(&games).Error
	return games, err
}

func (s *GormStore) GameSummaries(ctx context.Context, ids []uint) ([]models.GameSummary, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var games []models.GameSummary
	err := s.summaries(ctx).
		Where("games.id IN ?", ids).
		Scan(&games).Error
	return games, err
}

func (s *GormStore) BestGame(ctx context.Context, userID uint) (*models.GameSummary, error) {
	var games []models.GameSummary
	err := s.summaries(ctx).
		Where("games.user_id = ?", userID).
		Order("games.score DESC, games.created_at ASC").
		Limit(1).
		Scan(&games).Error
	if err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, services.ErrGameNotFound
	}
	return &games[0], nil
}

func (s *GormStore) ListCorrectOrders(ctx context.Context, gameID uint, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.WithContext(ctx).
		Where("game_id = ? AND status = ?", gameID, models.OrderCorrect).
		Order("id ASC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}
