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

const (
	DefaultSearchPageSize = 20
	MaxSearchPageSize     = 100
)

// SearchIndex stores menu items for full-text search. Search only matches
// items that are available and sit in an active category.
type SearchIndex interface {
	IndexMenuItems(ctx context.Context, items []models.SearchableMenuItem) error
	Search(ctx context.Context, query string, from, size int) (int64, []models.MenuItem, error)
}

type MenuService struct {
	Repo   *repo.GormRepo
	Events events.Publisher
	// Index is optional; nil disables search.
	Index SearchIndex
}

func (s *MenuService) ListMenuItems(ctx context.Context, f repo.MenuItemFilter) ([]models.MenuItemRow, error) {
	return s.Repo.ListMenuItems(ctx, f)
}

func menuItemFromRequest(req transport.MenuItemRequest) (*models.MenuItem, error) {
	if strings.TrimSpace(req.Name) == "" || req.Price == nil || req.CategoryID.Value() == 0 {
		return nil, invalid("Name, price, and category are required")
	}
	if req.Price.IsNegative() {
		return nil, invalid("Price must not be negative")
	}

	item := &models.MenuItem{
		Name:            req.Name,
		Description:     req.Description,
		Price:           models.NewMoney(*req.Price),
		CategoryID:      req.CategoryID.Value(),
		PreparationTime: models.DefaultPreparationTime,
		IsAvailable:     true,
	}
	if req.PreparationTime != nil && *req.PreparationTime > 0 {
		item.PreparationTime = *req.PreparationTime
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	return item, nil
}

func (s *MenuService) CreateMenuItem(ctx context.Context, req transport.MenuItemRequest) (*models.MenuItem, error) {
	item, err := menuItemFromRequest(req)
	if err != nil {
		return nil, err
	}

	created, err := s.Repo.CreateMenuItem(ctx, item)
	if err != nil {
		return nil, storeErr(err, "menu item")
	}

	s.afterMenuWrite(ctx, events.MenuItemCreated, created)
	return created, nil
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, req transport.MenuItemRequest) (*models.MenuItem, error) {
	if req.ID.Value() == 0 {
		return nil, invalid("Menu item ID is required")
	}
	item, err := menuItemFromRequest(req)
	if err != nil {
		return nil, err
	}
	item.ID = req.ID.Value()

	updated, err := s.Repo.UpdateMenuItem(ctx, item)
	if err != nil {
		return nil, storeErr(err, fmt.Sprintf("menu item %d", item.ID))
	}

	s.afterMenuWrite(ctx, events.MenuItemUpdated, updated)
	return updated, nil
}

func (s *MenuService) afterMenuWrite(ctx context.Context, typ string, item *models.MenuItem) {
	publish(ctx, s.Events, events.TopicMenu, strconv.FormatUint(uint64(item.ID), 10), typ, item)

	if s.Index == nil {
		return
	}
	if _, err := reindexMenu(ctx, s.Repo, s.Index, item.ID, 0); err != nil {
		logging.FromContext(ctx).Warn("menu_index_error", "menu_item_id", item.ID, "error", err)
	}
}

// Reindex pushes every menu item into the search index and returns how many
// were sent.
func (s *MenuService) Reindex(ctx context.Context) (int, error) {
	if s.Index == nil {
		return 0, fmt.Errorf("%w: menu search is not configured", ErrUnavailable)
	}
	n, err := reindexMenu(ctx, s.Repo, s.Index, 0, 0)
	if err != nil {
		return 0, err
	}
	logging.FromContext(ctx).With("svc", "menu").Info("menu_reindexed", "items", n)
	return n, nil
}

func reindexMenu(ctx context.Context, r *repo.GormRepo, index SearchIndex, itemID, categoryID uint) (int, error) {
	items, err := r.SearchableMenuItems(ctx, itemID, categoryID)
	if err != nil {
		return 0, fmt.Errorf("load menu items: %w", err)
	}
	if err := index.IndexMenuItems(ctx, items); err != nil {
		return 0, err
	}
	return len(items), nil
}

// PublicMenu returns the customer-facing menu and the number of items in it.
func (s *MenuService) PublicMenu(ctx context.Context) ([]models.MenuCategory, int, error) {
	cats, err := s.Repo.PublicMenu(ctx)
	if err != nil {
		return nil, 0, err
	}
	count := 0
	for _, c := range cats {
		count += len(c.Items)
	}
	return cats, count, nil
}

// Search pages through the search index. page starts at 1.
func (s *MenuService) Search(ctx context.Context, query string, page, size int) (int64, []models.MenuItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return 0, nil, invalid("Search query is required")
	}
	if s.Index == nil {
		return 0, nil, fmt.Errorf("%w: menu search is not configured", ErrUnavailable)
	}

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultSearchPageSize
	}
	size = min(size, MaxSearchPageSize)

	total, items, err := s.Index.Search(ctx, query, (page-1)*size, size)
	if err != nil {
		return 0, nil, err
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return total, items, nil
}
