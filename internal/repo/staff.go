package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant_ordering/internal/models"
)

func (r *GormRepo) ListStaff(ctx context.Context) ([]models.StaffRow, error) {
	staff := make([]models.StaffRow, 0)
	err := r.DB.WithContext(ctx).
		Table("staff AS s").
		Select("s.*, " +
			"(SELECT COUNT(*) FROM order_status_history h WHERE h.notes LIKE '%by staff ' || s.staff_id || '%') AS actions_count").
		Order("s.is_active DESC, s.role ASC, s.full_name ASC").
		Scan(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *GormRepo) CreateStaff(ctx context.Context, s *models.Staff) (*models.Staff, error) {
	if err := r.DB.WithContext(ctx).Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

// UpdateStaff overwrites identity, name, role and active flag. The password
// hash is left untouched.
func (r *GormRepo) UpdateStaff(ctx context.Context, upd *models.Staff) (*models.Staff, error) {
	var s models.Staff
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&s, upd.ID).Error; err != nil {
			return err
		}
		s.StaffID = upd.StaffID
		s.FullName = upd.FullName
		s.Role = upd.Role
		s.IsActive = upd.IsActive
		return tx.Save(&s).Error
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}
