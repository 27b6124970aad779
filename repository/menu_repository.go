package repository

import (
	"context"

	"orderalone/models"
	"orderalone/services"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

var _ services.MenuRepository = (*MenuRepository)(nil)

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(ctx context.Context, menu *models.Menu) error {
	return r.DB.WithContext(ctx).Create(menu).Error
}

func (r *MenuRepository) List(ctx context.Context, limit int) ([]models.Menu, error) {
	var menus []models.Menu
	err := r.DB.WithContext(ctx).Order("id ASC").Limit(limit).Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) ListSummaries(ctx context.Context, limit int) ([]models.MenuSummary, error) {
	var summaries []models.MenuSummary
	err := r.DB.WithContext(ctx).
		Model(&models.Menu{}).
		Select("id, name, description").
		Order("id ASC").
		Limit(limit).
		Scan(&summaries).Error
	return summaries, err
}

func (r *MenuRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Menu, error) {
	var menu models.Menu
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&menu, id).Error; err != nil {
			return notFound(err, services.ErrMenuNotFound)
		}
		if err := tx.Model(&menu).Updates(fields).Error; err != nil {
			return err
		}
		return tx.First(&menu, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

func (r *MenuRepository) Delete(ctx context.Context, id uint) error {
	result := r.DB.WithContext(ctx).Delete(&models.Menu{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return services.ErrMenuNotFound
	}
	return nil
}
