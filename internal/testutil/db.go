// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant_ordering/internal/models"
	"github.com/Skotchmaster/restaurant_ordering/pkg/db"
)

// NewDB opens a migrated in-memory SQLite database that lives for the test.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(context.Background(), db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(gdb) })

	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func Create(t testing.TB, gdb *gorm.DB, values ...any) {
	t.Helper()
	for _, v := range values {
		require.NoError(t, gdb.Create(v).Error)
	}
}

func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func Money(s string) models.Money {
	return models.NewMoney(Dec(s))
}

// Order inserts an order for userID with the given status, total and creation time.
func Order(t testing.TB, gdb *gorm.DB, userID uint, status, total string, at time.Time) *models.Order {
	t.Helper()
	o := &models.Order{
		UserID:      userID,
		Status:      status,
		TotalAmount: Money(total),
		CreatedAt:   at.UTC().Truncate(time.Second),
	}
	Create(t, gdb, o)
	return o
}
