package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant_ordering/internal/models"
)

func (r *GormRepo) ListCategories(ctx context.Context) ([]models.CategoryRow, error) {
	cats := make([]models.CategoryRow, 0)
	err := r.DB.WithContext(ctx).
		Table("categories AS c").
		Select("c.*, COUNT(mi.id) AS item_count, " +
			"COALESCE(SUM(CASE WHEN mi.is_available THEN 1 ELSE 0 END), 0) AS available_items").
		Joins("LEFT JOIN menu_items mi ON c.id = mi.category_id").
		Group("c.id").
		Order("c.name ASC").
		Scan(&cats).Error
	if err != nil {
		return nil, err
	}
	return cats, nil
}

func (r *GormRepo) CreateCategory(ctx context.Context, cat *models.Category) (*models.Category, error) {
	if err := r.DB.WithContext(ctx).Create(cat).Error; err != nil {
		return nil, err
	}
	return cat, nil
}

func (r *GormRepo) UpdateCategory(ctx context.Context, upd *models.Category) (*models.Category, error) {
	var cat models.Category
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cat, upd.ID).Error; err != nil {
			return err
		}
		cat.Name = upd.Name
		cat.Description = upd.Description
		cat.IsActive = upd.IsActive
		return tx.Save(&cat).Error
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}
