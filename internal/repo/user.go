package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant_ordering/internal/models"
)

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers pages users newest first, with order count and completed spend.
func (r *GormRepo) ListUsers(ctx context.Context, offset, limit int) (int64, []models.UserRow, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	users := make([]models.UserRow, 0, limit)
	err := r.DB.WithContext(ctx).
		Table("users AS u").
		Select("u.*, "+
			"(SELECT COUNT(*) FROM orders o WHERE o.user_id = u.id) AS order_count, "+
			"(SELECT COALESCE(SUM(o.total_amount), 0) FROM orders o WHERE o.user_id = u.id AND o.status = ?) AS total_spent",
			models.OrderStatusCompleted).
		Order("u.created_at DESC, u.id DESC").
		Offset(offset).
		Limit(limit).
		Scan(&users).Error
	if err != nil {
		return 0, nil, err
	}
	return total, users, nil
}

func (r *GormRepo) UpdateUser(ctx context.Context, id uint, fullName, phone string) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		user.FullName = fullName
		user.Phone = phone
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
