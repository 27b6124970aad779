package mocks

import (
	"context"

	"orderalone/models"
	"orderalone/services"

	"github.com/stretchr/testify/mock"
)

// Store is a mock type for the services.Store interface.
type Store struct {
	mock.Mock
}

func (_m *Store) FindMenu(ctx context.Context, id uint) (*models.Menu, error) {
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

func (_m *Store) FindGame(ctx context.Context, id uint) (*models.Game, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Game
	if rf, ok := ret.Get(0).(func(context.Context, uint) *models.Game); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Game)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *Store) FindOrder(ctx context.Context, id uint) (*models.Order, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Order
	if rf, ok := ret.Get(0).(func(context.Context, uint) *models.Order); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *Store) CreateGame(ctx context.Context, game *models.Game) error {
	ret := _m.Called(ctx, game)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Game) error); ok {
		r0 = rf(ctx, game)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	ret := _m.Called(ctx, order)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Order) error); ok {
		r0 = rf(ctx, order)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *Store) UpdateGameScore(ctx context.Context, gameID uint, delta int) error {
	ret := _m.Called(ctx, gameID, delta)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uint, int) error); ok {
		r0 = rf(ctx, gameID, delta)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *Store) MarkOrderTerminal(ctx context.Context, orderID uint, correct bool) error {
	ret := _m.Called(ctx, orderID, correct)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uint, bool) error); ok {
		r0 = rf(ctx, orderID, correct)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *Store) Transaction(ctx context.Context, fn func(services.Store) error) error {
	ret := _m.Called(ctx, fn)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, func(services.Store) error) error); ok {
		r0 = rf(ctx, fn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewStore creates a new instance of Store. It also registers a cleanup
// function to assert the mocks expectations.
func NewStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *Store {
	m := &Store{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// GameQueries is a mock type for the services.GameQueries interface.
type GameQueries struct {
	mock.Mock
}

func (_m *GameQueries) ListUserGames(ctx context.Context, userID uint, limit int) ([]models.GameSummary, error) {
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

func (_m *GameQueries) TopGames(ctx context.Context, limit int) ([]models.GameSummary, error) {
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

func (_m *GameQueries) GameSummaries(ctx context.Context, ids []uint) ([]models.GameSummary, error) {
	ret := _m.Called(ctx, ids)

	var r0 []models.GameSummary
	if rf, ok := ret.Get(0).(func(context.Context, []uint) []models.GameSummary); ok {
		r0 = rf(ctx, ids)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.GameSummary)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, []uint) error); ok {
		r1 = rf(ctx, ids)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *GameQueries) BestGame(ctx context.Context, userID uint) (*models.GameSummary, error) {
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

func (_m *GameQueries) ListCorrectOrders(ctx context.Context, gameID uint, limit int) ([]models.Order, error) {
	ret := _m.Called(ctx, gameID, limit)

	var r0 []models.Order
	if rf, ok := ret.Get(0).(func(context.Context, uint, int) []models.Order); ok {
		r0 = rf(ctx, gameID, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint, int) error); ok {
		r1 = rf(ctx, gameID, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewGameQueries creates a new instance of GameQueries. It also registers a cleanup
// function to assert the mocks expectations.
func NewGameQueries(t interface {
	mock.TestingT
	Cleanup(func())
}) *GameQueries {
	m := &GameQueries{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MenuLookup is a mock type for the services.MenuLookup interface.
type MenuLookup struct {
	mock.Mock
}

func (_m *MenuLookup) FindMenu(ctx context.Context, id uint) (*models.Menu, error) {
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

// NewMenuLookup creates a new instance of MenuLookup. It also registers a cleanup
// function to assert the mocks expectations.
func NewMenuLookup(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuLookup {
	m := &MenuLookup{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
