// Package seed loads demo data into an empty store for local runs.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant_ordering/internal/models"
	"github.com/Skotchmaster/restaurant_ordering/internal/repo"
	"github.com/Skotchmaster/restaurant_ordering/pkg/hash"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

const (
	DemoAdminUsername = "admin"
	DemoAdminPassword = "admin123"
)

type demoItem struct {
	name, description, price string
	prepTime                 int
}

var demoMenu = []struct {
	category    string
	description string
	items       []demoItem
}{
	{"Breakfast", "Served until 11am", []demoItem{
		{"Sunrise Pancakes", "Stack of three with maple syrup", "7.50", 10},
		{"Eggs Benedict", "Poached eggs, ham, hollandaise", "9.25", 12},
	}},
	{"Mains", "", []demoItem{
		{"Classic Burger", "Beef patty, cheddar, pickles", "11.98", 15},
		{"Veggie Wrap", "Grilled vegetables and hummus", "8.40", 8},
	}},
	{"Drinks", "", []demoItem{
		{"Fresh Orange Juice", "", "3.20", 3},
		{"Flat White", "", "2.90", 4},
	}},
}

// Demo creates the demo admin and menu. Rows that already exist (matched by
// username or name) are left untouched, so running it twice is harmless.
func Demo(ctx context.Context, db *gorm.DB) error {
	l := logging.FromContext(ctx).With("component", "seed")

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		store := &repo.GormRepo{DB: tx}
		_, err := store.GetAdminByUsername(ctx, DemoAdminUsername)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			pwHash, err := hash.HashPassword(DemoAdminPassword)
			if err != nil {
				return fmt.Errorf("hash admin password: %w", err)
			}
			admin, err := store.CreateAdmin(ctx, &models.Admin{Username: DemoAdminUsername, PasswordHash: pwHash, FullName: "Demo Admin"})
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			l.Info("seed_admin_created", "username", admin.Username)
		case err != nil:
			return fmt.Errorf("look up admin: %w", err)
		}

		for _, c := range demoMenu {
			cat := models.Category{}
			res := tx.Where(models.Category{Name: c.category}).
				Attrs(models.Category{Description: c.description, IsActive: true}).
				FirstOrCreate(&cat)
			if res.Error != nil {
				return fmt.Errorf("seed category %q: %w", c.category, res.Error)
			}

			for _, it := range c.items {
				item := models.MenuItem{}
				res := tx.Where(models.MenuItem{Name: it.name, CategoryID: cat.ID}).
					Attrs(models.MenuItem{
						Description:     it.description,
						Price:           models.NewMoney(decimal.RequireFromString(it.price)),
						PreparationTime: it.prepTime,
						IsAvailable:     true,
					}).
					FirstOrCreate(&item)
				if res.Error != nil {
					return fmt.Errorf("seed menu item %q: %w", it.name, res.Error)
				}
			}
		}

		l.Info("seed_menu_done", "categories", len(demoMenu))
		return nil
	})
}
