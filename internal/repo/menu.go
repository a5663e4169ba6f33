package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant_ordering/internal/models"
)

type MenuItemFilter struct {
	CategoryID  *uint
	IsAvailable *bool
}

const menuItemRowSelect = "mi.*, c.name AS category_name, " +
	"(SELECT COUNT(*) FROM order_items oi WHERE oi.menu_item_id = mi.id) AS times_ordered"

func (r *GormRepo) ListMenuItems(ctx context.Context, f MenuItemFilter) ([]models.MenuItemRow, error) {
	q := r.DB.WithContext(ctx).
		Table("menu_items AS mi").
		Select(menuItemRowSelect).
		Joins("LEFT JOIN categories c ON mi.category_id = c.id")
	if f.CategoryID != nil {
		q = q.Where("mi.category_id = ?", *f.CategoryID)
	}
	if f.IsAvailable != nil {
		q = q.Where("mi.is_available = ?", *f.IsAvailable)
	}

	items := make([]models.MenuItemRow, 0)
	if err := q.Order("c.name ASC, mi.name ASC").Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// SearchableMenuItems loads items together with their category's active flag.
// A zero itemID or categoryID matches every item.
func (r *GormRepo) SearchableMenuItems(ctx context.Context, itemID, categoryID uint) ([]models.SearchableMenuItem, error) {
	q := r.DB.WithContext(ctx).
		Table("menu_items AS mi").
		Select("mi.*, c.is_active AS category_active").
		Joins("JOIN categories c ON mi.category_id = c.id")
	if itemID != 0 {
		q = q.Where("mi.id = ?", itemID)
	}
	if categoryID != 0 {
		q = q.Where("mi.category_id = ?", categoryID)
	}

	items := make([]models.SearchableMenuItem, 0)
	if err := q.Order("mi.id ASC").Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateMenuItem(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateMenuItem overwrites the editable columns of an existing item. It
// returns gorm.ErrRecordNotFound when no item has upd.ID.
func (r *GormRepo) UpdateMenuItem(ctx context.Context, upd *models.MenuItem) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, upd.ID).Error; err != nil {
			return err
		}
		item.Name = upd.Name
		item.Description = upd.Description
		item.Price = upd.Price
		item.CategoryID = upd.CategoryID
		item.PreparationTime = upd.PreparationTime
		item.IsAvailable = upd.IsAvailable
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// PublicMenu returns the active categories, each carrying its available items.
func (r *GormRepo) PublicMenu(ctx context.Context) ([]models.MenuCategory, error) {
	cats := make([]models.MenuCategory, 0)
	err := r.DB.WithContext(ctx).
		Table("categories AS c").
		Select("c.*, COUNT(mi.id) AS item_count").
		Joins("LEFT JOIN menu_items mi ON c.id = mi.category_id AND mi.is_available = ?", true).
		Where("c.is_active = ?", true).
		Group("c.id").
		Order("c.name ASC").
		Scan(&cats).Error
	if err != nil {
		return nil, err
	}

	var items []models.MenuItemRow
	err = r.DB.WithContext(ctx).
		Table("menu_items AS mi").
		Select("mi.*, c.name AS category_name").
		Joins("JOIN categories c ON mi.category_id = c.id").
		Where("mi.is_available = ? AND c.is_active = ?", true, true).
		Order("mi.name ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uint][]models.MenuItemRow, len(cats))
	for _, it := range items {
		byCategory[it.CategoryID] = append(byCategory[it.CategoryID], it)
	}
	for i := range cats {
		cats[i].Items = byCategory[cats[i].ID]
		if cats[i].Items == nil {
			cats[i].Items = []models.MenuItemRow{}
		}
	}
	return cats, nil
}
