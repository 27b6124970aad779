package mocks

import (
	"context"

	"orderalone/models"

	"github.com/stretchr/testify/mock"
)

// MenuRepository is a mock type for the services.MenuRepository interface.
type MenuRepository struct {
	mock.Mock
}

func (_m *MenuRepository) Create(ctx context.Context, menu *models.Menu) error {
	ret := _m.Called(ctx, menu)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Menu) error); ok {
		r0 = rf(ctx, menu)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *MenuRepository) List(ctx context.Context, limit int) ([]models.Menu, error) {
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

func (_m *MenuRepository) ListSummaries(ctx context.Context, limit int) ([]models.MenuSummary, error) {
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

func (_m *MenuRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Menu, error) {
	ret := _m.Called(ctx, id, fields)

	var r0 *models.Menu
	if rf, ok := ret.Get(0).(func(context.Context, uint, map[string]interface{}) *models.Menu); ok {
		r0 = rf(ctx, id, fields)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Menu)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint, map[string]interface{}) error); ok {
		r1 = rf(ctx, id, fields)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *MenuRepository) Delete(ctx context.Context, id uint) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uint) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMenuRepository creates a new instance of MenuRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewMenuRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuRepository {
	m := &MenuRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// UserRepository is a mock type for the services.UserRepository interface.
type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) Create(ctx context.Context, user *models.User) error {
	ret := _m.Called(ctx, user)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.User) error); ok {
		r0 = rf(ctx, user)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

func (_m *UserRepository) FindByAccountID(ctx context.Context, accountID string) (*models.User, error) {
	ret := _m.Called(ctx, accountID)

	var r0 *models.User
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.User); ok {
		r0 = rf(ctx, accountID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, accountID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

func (_m *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.User
	if rf, ok := ret.Get(0).(func(context.Context, uint) *models.User); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewUserRepository creates a new instance of UserRepository. It also registers a cleanup
// function to assert the mocks expectations.
func NewUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
