package services

import (
	"context"
	"io"
	"time"

	"orderalone/models"
)

// Store is the persistence the order generator and scorer run against.
type Store interface {
	FindMenu(ctx context.Context, id uint) (*models.Menu, error)
	FindGame(ctx context.Context, id uint) (*models.Game, error)
	FindOrder(ctx context.Context, id uint) (*models.Order, error)
	CreateGame(ctx context.Context, game *models.Game) error
	CreateOrder(ctx context.Context, order *models.Order) error
	// UpdateGameScore adds delta to the stored score without reading it first.
	UpdateGameScore(ctx context.Context, gameID uint, delta int) error
	// MarkOrderTerminal moves a pending order to correct or incorrect. It
	// returns ErrAlreadyScored when the order is no longer pending.
	MarkOrderTerminal(ctx context.Context, orderID uint, correct bool) error
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type GameQueries interface {
	ListUserGames(ctx context.Context, userID uint, limit int) ([]models.GameSummary, error)
	TopGames(ctx context.Context, limit int) ([]models.GameSummary, error)
	GameSummaries(ctx context.Context, ids []uint) ([]models.GameSummary, error)
	BestGame(ctx context.Context, userID uint) (*models.GameSummary, error)
	ListCorrectOrders(ctx context.Context, gameID uint, limit int) ([]models.Order, error)
}

type MenuLookup interface {
	FindMenu(ctx context.Context, id uint) (*models.Menu, error)
}

type MenuRepository interface {
	Create(ctx context.Context, menu *models.Menu) error
	List(ctx context.Context, limit int) ([]models.Menu, error)
	ListSummaries(ctx context.Context, limit int) ([]models.MenuSummary, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Menu, error)
	Delete(ctx context.Context, id uint) error
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByAccountID(ctx context.Context, accountID string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

type MenuCache interface {
	Get(ctx context.Context, id uint) (*models.Menu, error)
	Set(ctx context.Context, menu *models.Menu) error
	Invalidate(ctx context.Context, id uint) error
}

type LeaderboardEntry struct {
	GameID uint
	Score  int
}

type Leaderboard interface {
	Record(ctx context.Context, gameID uint, score int) error
	Top(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type GameEvent struct {
	Type       string    `json:"type"`
	GameID     uint      `json:"game_id"`
	OrderID    uint      `json:"order_id,omitempty"`
	UserID     uint      `json:"user_id"`
	Correct    bool      `json:"correct"`
	ScoreDelta int       `json:"score_delta"`
	Score      int       `json:"score"`
	Timestamp  time.Time `json:"timestamp"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event GameEvent) error
}

type GameNotifier interface {
	BroadcastToGame(gameID uint, messageType string, payload interface{})
}

type ImageStore interface {
	Upload(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (string, error)
}

type OrderServiceInterface interface {
	CreateOrder(ctx context.Context, userID, gameID uint) (*models.Order, error)
	ScoreAnswer(ctx context.Context, userID uint, req *ScoreRequest) (*ScoreResult, error)
	ListCorrectOrders(ctx context.Context, userID, gameID uint, limit int) ([]models.Order, error)
}

type GameServiceInterface interface {
	StartGame(ctx context.Context, userID uint, req *StartGameRequest) (*StartGameResponse, error)
	EndGame(ctx context.Context, userID, gameID uint) (*EndGameResponse, error)
	ListUserGames(ctx context.Context, userID uint, limit int) ([]models.GameSummary, error)
	TopGames(ctx context.Context, limit int) ([]models.GameSummary, error)
	BestGame(ctx context.Context, userID uint) (*models.GameSummary, error)
	ShareCode(ctx context.Context, userID, gameID uint) ([]byte, error)
	CheckGameOwnership(ctx context.Context, gameID, userID uint) (*models.Game, error)
}

type MenuServiceInterface interface {
	MenuLookup
	Create(ctx context.Context, req *CreateMenuRequest) (*models.Menu, error)
	List(ctx context.Context, limit int) ([]models.Menu, error)
	ListSummaries(ctx context.Context, limit int) ([]models.MenuSummary, error)
	Update(ctx context.Context, id uint, req *UpdateMenuRequest) (*models.Menu, error)
	Delete(ctx context.Context, id uint) error
	UploadImage(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)
}

type AuthServiceInterface interface {
	Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error)
	Profile(ctx context.Context, userID uint) (*models.User, error)
}

var (
	_ OrderServiceInterface = (*OrderService)(nil)
	_ GameServiceInterface  = (*GameService)(nil)
	_ MenuServiceInterface  = (*MenuService)(nil)
	_ AuthServiceInterface  = (*AuthService)(nil)
)
