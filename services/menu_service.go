package services

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"orderalone/logger"
	"orderalone/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

type MenuService struct {
	repo   MenuRepository
	store  MenuLookup
	cache  MenuCache
	images ImageStore
}

// NewMenuService builds the catalog service. cache and images may be nil.
func NewMenuService(repo MenuRepository, store MenuLookup, cache MenuCache, images ImageStore) *MenuService {
	return &MenuService{
		repo:   repo,
		store:  store,
		cache:  cache,
		images: images,
	}
}

type CreateMenuRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Level       int               `json:"level" binding:"min=0"`
	Data        []models.Category `json:"data" binding:"required,dive"`
}

// UpdateMenuRequest only touches the fields that are present.
type UpdateMenuRequest struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Level       *int               `json:"level" binding:"omitempty,min=0"`
	Data        *[]models.Category `json:"data"`
}

func (r *UpdateMenuRequest) fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Level != nil {
		fields["level"] = *r.Level
	}
	if r.Data != nil {
		fields["data"] = datatypes.NewJSONType(*r.Data)
	}
	return fields
}

func (s *MenuService) Create(ctx context.Context, req *CreateMenuRequest) (*models.Menu, error) {
	menu := &models.Menu{
		Name:        req.Name,
		Description: req.Description,
		Level:       req.Level,
		Data:        datatypes.NewJSONType(req.Data),
	}
	if err := s.repo.Create(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *MenuService) List(ctx context.Context, limit int) ([]models.Menu, error) {
	return s.repo.List(ctx, limit)
}

func (s *MenuService) ListSummaries(ctx context.Context, limit int) ([]models.MenuSummary, error) {
	return s.repo.ListSummaries(ctx, limit)
}

// FindMenu reads through the cache. Cache failures only cost a database read.
func (s *MenuService) FindMenu(ctx context.Context, id uint) (*models.Menu, error) {
	if s.cache != nil {
		menu, err := s.cache.Get(ctx, id)
		if err == nil {
			return menu, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			logger.Log.Warn("menu cache read failed", zap.Uint("menu_id", id), zap.Error(err))
		}
	}

	menu, err := s.store.FindMenu(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, menu); err != nil {
			logger.Log.Warn("menu cache write failed", zap.Uint("menu_id", id), zap.Error(err))
		}
	}
	return menu, nil
}

func (s *MenuService) Update(ctx context.Context, id uint, req *UpdateMenuRequest) (*models.Menu, error) {
	fields := req.fields()
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	menu, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return menu, nil
}

func (s *MenuService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// UploadImage stores a picture under a random object name and returns its URL.
func (s *MenuService) UploadImage(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	if s.images == nil {
		return "", ErrStorageDisabled
	}
	name := "menu/" + uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	return s.images.Upload(ctx, name, reader, size, contentType)
}

func (s *MenuService) invalidate(ctx context.Context, id uint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		logger.Log.Warn("menu cache invalidate failed", zap.Uint("menu_id", id), zap.Error(err))
	}
}
