package mocks

import (
	"context"
	"io"

	"orderalone/models"
	"orderalone/services"

	"github.com/stretchr/testify/mock"
)

// MenuCache is a mock type for the services.MenuCache interface.
type MenuCache struct {
	mock.Mock
}

func (_m *MenuCache) Get(ctx context.Context, id uint) (*models.Menu, error) {
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

func (_m *MenuCache) Set(ctx context.Context, menu *models.Menu) error {
	ret := _m.Called(ctx, menu)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Menu) error); ok {
		r0 = rf(ctx, menu)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MenuCache) Invalidate(ctx context.Context, id uint) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uint) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMenuCache creates a new instance of MenuCache. It also registers a cleanup
// function to assert the mocks expectations.
func NewMenuCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuCache {
	m := &MenuCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Leaderboard is a mock type for the services.Leaderboard interface.
type Leaderboard struct {
	mock.Mock
}

func (_m *Leaderboard) Record(ctx context.Context, gameID uint, score int) error {
	ret := _m.Called(ctx, gameID, score)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uint, int) error); ok {
		r0 = rf(ctx, gameID, score)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *Leaderboard) Top(ctx context.Context, limit int) ([]services.LeaderboardEntry, error) {
	ret := _m.Called(ctx, limit)

	var r0 []services.LeaderboardEntry
	if rf, ok := ret.Get(0).(func(context.Context, int) []services.LeaderboardEntry); ok {
		r0 = rf(ctx, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]services.LeaderboardEntry)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewLeaderboard creates a new instance of Leaderboard. It also registers a cleanup
// function to assert the mocks expectations.
func NewLeaderboard(t interface {
	mock.TestingT
	Cleanup(func())
}) *Leaderboard {
	m := &Leaderboard{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// EventPublisher is a mock type for the services.EventPublisher interface.
type EventPublisher struct {
	mock.Mock
}

func (_m *EventPublisher) Publish(ctx context.Context, event services.GameEvent) error {
	ret := _m.Called(ctx, event)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, services.GameEvent) error); ok {
		r0 = rf(ctx, event)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewEventPublisher creates a new instance of EventPublisher. It also registers a cleanup
// function to assert the mocks expectations.
func NewEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventPublisher {
	m := &EventPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// GameNotifier is a mock type for the services.GameNotifier interface.
type GameNotifier struct {
	mock.Mock
}

func (_m *GameNotifier) BroadcastToGame(gameID uint, messageType string, payload interface{}) {
	_m.Called(gameID, messageType, payload)
}

// NewGameNotifier creates a new instance of GameNotifier. It also registers a cleanup
// function to assert the mocks expectations.
func NewGameNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *GameNotifier {
	m := &GameNotifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// ImageStore is a mock type for the services.ImageStore interface.
type ImageStore struct {
	mock.Mock
}

func (_m *ImageStore) Upload(ctx context.Context, name string, reader io.Reader, size int64, contentType string) (string, error) {
	ret := _m.Called(ctx, name, reader, size, contentType)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string, io.Reader, int64, string) string); ok {
		r0 = rf(ctx, name, reader, size, contentType)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, io.Reader, int64, string) error); ok {
		r1 = rf(ctx, name, reader, size, contentType)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewImageStore creates a new instance of ImageStore. It also registers a cleanup
// function to assert the mocks expectations.
func NewImageStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ImageStore {
	m := &ImageStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// QRGenerator is a mock type for the services.QRGenerator interface.
type QRGenerator struct {
	mock.Mock
}

func (_m *QRGenerator) Generate(gameID uint) ([]byte, error) {
	ret := _m.Called(gameID)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(uint) []byte); ok {
		r0 = rf(gameID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(uint) error); ok {
		r1 = rf(gameID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewQRGenerator creates a new instance of QRGenerator. It also registers a cleanup
// function to assert the mocks expectations.
func NewQRGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *QRGenerator {
	m := &QRGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
