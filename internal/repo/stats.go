package repo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/restaurant_ordering/internal/models"
)

// CountOrders counts orders created at or after since; a zero since counts all.
func (r *GormRepo) CountOrders(ctx context.Context, since time.Time) (int64, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{})
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// CompletedRevenue sums total_amount of completed orders created at or after
// since; a zero since sums all of them.
func (r *GormRepo) CompletedRevenue(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("status = ?", models.OrderStatusCompleted)
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since)
	}
	var out struct {
		Total decimal.Decimal
	}
	if err := q.Scan(&out).Error; err != nil {
		return decimal.Zero, err
	}
	return out.Total, nil
}

func (r *GormRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *GormRepo) CountActiveStaff(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.WithContext(ctx).Model(&models.Staff{}).Where("is_active = ?", true).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *GormRepo) PopularItems(ctx context.Context, since time.Time, limit int) ([]models.PopularItem, error) {
	items := make([]models.PopularItem, 0, limit)
	err := r.DB.WithContext(ctx).
		Table("order_items AS oi").
		Select("mi.name AS name, COUNT(oi.id) AS order_count, COALESCE(SUM(oi.quantity), 0) AS total_quantity").
		Joins("JOIN menu_items mi ON oi.menu_item_id = mi.id").
		Joins("JOIN orders o ON oi.order_id = o.id").
		Where("o.created_at >= ?", since).
		Group("mi.id, mi.name").
		Order("total_quantity DESC, mi.name ASC").
		Limit(limit).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) StatusCounts(ctx context.Context, since time.Time) ([]models.StatusCount, error) {
	counts := make([]models.StatusCount, 0)
	err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("status").
		Order("status ASC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// OrderFacts returns the report-relevant columns of every order created at or
// after since.
func (r *GormRepo) OrderFacts(ctx context.Context, since time.Time) ([]models.OrderFact, error) {
	var facts []models.OrderFact
	err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("status, total_amount, created_at").
		Where("created_at >= ?", since).
		Scan(&facts).Error
	if err != nil {
		return nil, err
	}
	return facts, nil
}
