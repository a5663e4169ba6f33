package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Skotchmaster/restaurant_ordering/internal/events"
	"github.com/Skotchmaster/restaurant_ordering/internal/models"
	"github.com/Skotchmaster/restaurant_ordering/internal/repo"
	"github.com/Skotchmaster/restaurant_ordering/internal/transport"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

type CategoryService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
	// Index is optional; when set, a category update refreshes its items.
	Index SearchIndex
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.CategoryRow, error) {
	return s.Repo.ListCategories(ctx)
}

func categoryFromRequest(req transport.CategoryRequest) (*models.Category, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, invalid("Category name is required")
	}
	cat := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	return cat, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req transport.CategoryRequest) (*models.Category, error) {
	cat, err := categoryFromRequest(req)
	if err != nil {
		return nil, err
	}
	created, err := s.Repo.CreateCategory(ctx, cat)
	if err != nil {
		return nil, storeErr(err, "category")
	}
	publish(ctx, s.Events, events.TopicMenu, categoryKey(created.ID), events.CategoryCreated, created)
	return created, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, req transport.CategoryRequest) (*models.Category, error) {
	if req.ID.Value() == 0 {
		return nil, invalid("Category ID is required")
	}
	cat, err := categoryFromRequest(req)
	if err != nil {
		return nil, err
	}
	cat.ID = req.ID.Value()

	updated, err := s.Repo.UpdateCategory(ctx, cat)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("category %d", cat.ID))
	}
	publish(ctx, s.Events, events.TopicMenu, categoryKey(updated.ID), events.CategoryUpdated, updated)

	if s.Index != nil {
		if _, err := reindexMenu(ctx, s.Repo, s.Index, 0, updated.ID); err != nil {
			logging.FromContext(ctx).Warn("menu_index_error", "category_id", updated.ID, "error", err)
		}
	}
	return updated, nil
}

func categoryKey(id uint) string {
	return "category-" + strconv.FormatUint(uint64(id), 10)
}
