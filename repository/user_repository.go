package repository

import (
	"context"
	"errors"

	"orderalone/models"
	"orderalone/services"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

var _ services.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.DB.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return services.ErrUserExists
	}
	return err
}

func (r *UserRepository) FindByAccountID(ctx context.Context, accountID string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("account_id = ?", accountID).First(&user).Error; err != nil {
		return nil, notFound(err, services.ErrUserNotFound)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err, services.ErrUserNotFound)
	}
	return &user, nil
}
