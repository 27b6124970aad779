package mocks

import (
	"context"
	"io"

	"orderalone/models"
	"orderalone/services"

	"github.com/stretchr/testify/mock"
)

// OrderServiceInterface is a mock type for the services.OrderServiceInterface interface.
type OrderServiceInterface struct {
	mock.Mock
}

func (_m *OrderServiceInterface) CreateOrder(ctx context.Context, userID uint, gameID uint) (*models.Order, error) {
	ret := _m.Called(ctx, userID, gameID)

	var r0 *models.Order
	if rf, ok := ret.Get(0).(func(context.Context, uint, uint) *models.Order); ok {
		r0 = rf(ctx, userID, gameID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint, uint) error); ok {
		r1 = rf(ctx, userID, gameID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderServiceInterface) ScoreAnswer(ctx context.Context, userID uint, req *services.ScoreRequest) (*services.ScoreResult, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 *services.ScoreResult
	if rf, ok := ret.Get(0).(func(context.Context, uint, *services.ScoreRequest) *services.ScoreResult); ok {
		r0 = rf(ctx, userID, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*services.ScoreResult)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint, *services.ScoreRequest) error); ok {
		r1 = rf(ctx, userID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *OrderServiceInterface) ListCorrectOrders(ctx context.Context, userID uint, gameID uint, limit int) ([]models.Order, error) {
	ret := _m.Called(ctx, userID, gameID, limit)

	var r0 []models.Order
	if rf, ok := ret.Get(0).(func(context.Context, uint, uint, int) []models.Order); ok {
		r0 = rf(ctx, userID, gameID, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint, uint, int) error); ok {
		r1 = rf(ctx, userID, gameID, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewOrderServiceInterface creates a new instance of OrderServiceInterface. It also registers a cleanup
// function to assert the mocks expectations.
func NewOrderServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// GameServiceInterface is a mock type for the services.GameServiceInterface interface.
type GameServiceInterface struct {
	mock.Mock
}

func (_m *GameServiceInterface) StartGame(ctx context.Context, userID uint, req *services.StartGameRequest) (*services.StartGameResponse, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 *services.StartGameResponse
	if rf, ok := ret.Get(0).(func(context.Context, uint, *services.StartGameRequest) *services.StartGameResponse); ok {
		r0 = rf(ctx, userID, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*services.StartGameResponse)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint, *services.StartGameRequest) error); ok {
		r1 = rf(ctx, userID, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *GameServiceInterface) EndGame(ctx context.Context, userID uint, gameID uint) (*services.EndGameResponse, error) {
	ret := _m.Called(ctx, userID, gameID)

	var r0 *services.EndGameResponse
	if rf, ok := ret.Get(0).(func(context.Context, uint, uint) *services.EndGameResponse); ok {
		r0 = rf(ctx, userID, gameID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*services.EndGameResponse)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint, uint) error); ok {
		r1 = rf(ctx, userID, gameID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *GameServiceInterface) ListUserGames(ctx context.Context, userID uint, limit int) ([]models.GameSummary, error) {
	ret := _m.Called(ctx, userID, limit)

	var r0 []models.GameSummary
	if rf, ok := ret.Get(0).(func(context.Context, uint, int) []models.GameSummary); ok {
		r0 = rf(ctx, userID, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.GameSummary)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint, int) error); ok {
		r1 = rf(ctx, userID, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *GameServiceInterface) TopGames(ctx context.Context, limit int) ([]models.GameSummary, error) {
	ret := _m.Called(ctx, limit)

	var r0 []models.GameSummary
	if rf, ok := ret.Get(0).(func(context.Context, int) []models.GameSummary); ok {
		r0 = rf(ctx, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.GameSummary)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *GameServiceInterface) BestGame(ctx context.Context, userID uint) (*models.GameSummary, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.GameSummary
	if rf, ok := ret.Get(0).(func(context.Context, uint) *models.GameSummary); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.GameSummary)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *GameServiceInterface) ShareCode(ctx context.Context, userID uint, gameID uint) ([]byte, error) {
	ret := _m.Called(ctx, userID, gameID)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(context.Context, uint, uint) []byte); ok {
		r0 = rf(ctx, userID, gameID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint, uint) error); ok {
		r1 = rf(ctx, userID, gameID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *GameServiceInterface) CheckGameOwnership(ctx context.Context, gameID uint, userID uint) (*models.Game, error) {
	ret := _m.Called(ctx, gameID, userID)

	var r0 *models.Game
	if rf, ok := ret.Get(0).(func(context.Context, uint, uint) *models.Game); ok {
		r0 = rf(ctx, gameID, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Game)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint, uint) error); ok {
		r1 = rf(ctx, gameID, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewGameServiceInterface creates a new instance of GameServiceInterface. It also registers a cleanup
// function to assert the mocks expectations.
func NewGameServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *GameServiceInterface {
	m := &GameServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MenuServiceInterface is a mock type for the services.MenuServiceInterface interface.
type MenuServiceInterface struct {
	mock.Mock
}

func (_m *MenuServiceInterface) FindMenu(ctx context.Context, id uint) (*models.Menu, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Menu
	if rf, ok := ret.Get(0).(func(context.Context, uint) *models.Menu); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Menu)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MenuServiceInterface) Create(ctx context.Context, req *services.CreateMenuRequest) (*models.Menu, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.Menu
	if rf, ok := ret.Get(0).(func(context.Context, *services.CreateMenuRequest) *models.Menu); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Menu)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *services.CreateMenuRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MenuServiceInterface) List(ctx context.Context, limit int) ([]models.Menu, error) {
	ret := _m.Called(ctx, limit)

	var r0 []models.Menu
	if rf, ok := ret.Get(0).(func(context.Context, int) []models.Menu); ok {
		r0 = rf(ctx, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Menu)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MenuServiceInterface) ListSummaries(ctx context.Context, limit int) ([]models.MenuSummary, error) {
	ret := _m.Called(ctx, limit)

	var r0 []models.MenuSummary
	if rf, ok := ret.Get(0).(func(context.Context, int) []models.MenuSummary); ok {
		r0 = rf(ctx, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.MenuSummary)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MenuServiceInterface) Update(ctx context.Context, id uint, req *services.UpdateMenuRequest) (*models.Menu, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *models.Menu
	if rf, ok := ret.Get(0).(func(context.Context, uint, *services.UpdateMenuRequest) *models.Menu); ok {
		r0 = rf(ctx, id, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Menu)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint, *services.UpdateMenuRequest) error); ok {
		r1 = rf(ctx, id, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MenuServiceInterface) Delete(ctx context.Context, id uint) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uint) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MenuServiceInterface) UploadImage(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	ret := _m.Called(ctx, filename, reader, size, contentType)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string, io.Reader, int64, string) string); ok {
		r0 = rf(ctx, filename, reader, size, contentType)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, io.Reader, int64, string) error); ok {
		r1 = rf(ctx, filename, reader, size, contentType)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMenuServiceInterface creates a new instance of MenuServiceInterface. It also registers a cleanup
// function to assert the mocks expectations.
func NewMenuServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuServiceInterface {
	m := &MenuServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// AuthServiceInterface is a mock type for the services.AuthServiceInterface interface.
type AuthServiceInterface struct {
	mock.Mock
}

func (_m *AuthServiceInterface) Signup(ctx context.Context, req *services.SignupRequest) (*services.AuthResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *services.AuthResponse
	if rf, ok := ret.Get(0).(func(context.Context, *services.SignupRequest) *services.AuthResponse); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*services.AuthResponse)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *services.SignupRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *AuthServiceInterface) Login(ctx context.Context, req *services.LoginRequest) (*services.AuthResponse, error) {
	ret := _m.Called(ctx, req)

	var r0 *services.AuthResponse
	if rf, ok := ret.Get(0).(func(context.Context, *services.LoginRequest) *services.AuthResponse); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*services.AuthResponse)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *services.LoginRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *AuthServiceInterface) Refresh(ctx context.Context, refreshToken string) (*services.AuthResponse, error) {
	ret := _m.Called(ctx, refreshToken)

	var r0 *services.AuthResponse
	if rf, ok := ret.Get(0).(func(context.Context, string) *services.AuthResponse); ok {
		r0 = rf(ctx, refreshToken)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*services.AuthResponse)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, refreshToken)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *AuthServiceInterface) Profile(ctx context.Context, userID uint) (*models.User, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.User
	if rf, ok := ret.Get(0).(func(context.Context, uint) *models.User); ok {
		r0 = rf(ctx, userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint) error); ok {
		r1 = rf(ctx, userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewAuthServiceInterface creates a new instance of AuthServiceInterface. It also registers a cleanup
// function to assert the mocks expectations.
func NewAuthServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuthServiceInterface {
	m := &AuthServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
