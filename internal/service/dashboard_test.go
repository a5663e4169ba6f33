package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/restaurant_ordering/internal/models"
	"github.com/Skotchmaster/restaurant_ordering/internal/testutil"
)

func TestDashboardStats_TodayVersusTotal(t *testing.T) {
	r, gdb := newTestRepo(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= 7; i++ {
		testutil.Order(t, gdb, 1, models.OrderStatusCompleted, "5.00", today.AddDate(0, 0, -i))
	}
	testutil.Order(t, gdb, 1, models.OrderStatusCompleted, "10.00", today.Add(9*time.Hour))
	testutil.Order(t, gdb, 2, models.OrderStatusCompleted, "15.00", today.Add(10*time.Hour))
	testutil.Order(t, gdb, 2, models.OrderStatusPending, "40.00", today.Add(11*time.Hour))

	testutil.Create(t, gdb,
		&models.User{Email: "a@x.io", PasswordHash: "h", FullName: "A"},
		&models.User{Email: "b@x.io", PasswordHash: "h", FullName: "B"},
		&models.Staff{StaffID: "C1", FullName: "Chef", Role: "chef", PasswordHash: "h", IsActive: true},
	)

	svc := &DashboardService{Repo: r, Clock: fixedClock(now)}
	st, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 10, st.TotalOrders)
	assert.EqualValues(t, 3, st.TodayOrders)
	assert.InDelta(t, 25.00, st.TodayRevenue, 1e-9)
	assert.InDelta(t, 60.00, st.TotalRevenue, 1e-9)
	assert.EqualValues(t, 2, st.TotalUsers)
	assert.EqualValues(t, 1, st.ActiveStaff)
	assert.LessOrEqual(t, st.TodayOrders, st.TotalOrders)
	assert.LessOrEqual(t, st.TodayRevenue, st.TotalRevenue)

	assert.Equal(t, []models.StatusCount{
		{Status: models.OrderStatusCompleted, Count: 2},
		{Status: models.OrderStatusPending, Count: 1},
	}, st.OrderStatus)
	assert.NotNil(t, st.PopularItems)
	assert.Empty(t, st.PopularItems)
}

func TestDashboardStats_EmptyStore(t *testing.T) {
	r, _ := newTestRepo(t)
	svc := &DashboardService{Repo: r, Clock: fixedClock(time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC))}

	st, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, st.TotalOrders)
	assert.Zero(t, st.TotalRevenue)
	assert.NotNil(t, st.PopularItems)
	assert.NotNil(t, st.OrderStatus)
}

func TestDashboardStats_TodayFollowsConfiguredZone(t *testing.T) {
	r, gdb := newTestRepo(t)
	zone := time.FixedZone("UTC+5", 5*3600)
	// 02:00 local on the 10th is 21:00 UTC on the 9th
	now := time.Date(2026, 3, 10, 2, 0, 0, 0, zone)

	testutil.Order(t, gdb, 1, models.OrderStatusCompleted, "8.00", time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC))
	testutil.Order(t, gdb, 1, models.OrderStatusCompleted, "3.00", time.Date(2026, 3, 9, 18, 0, 0, 0, time.UTC))

	svc := &DashboardService{Repo: r, Clock: fixedClock(now)}
	st, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, st.TodayOrders)
	assert.InDelta(t, 8.0, st.TodayRevenue, 1e-9)
}

func TestDashboardStats_PopularItemsSinceYesterday(t *testing.T) {
	r, gdb := newTestRepo(t)
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	cat := models.Category{Name: "Mains", IsActive: true}
	testutil.Create(t, gdb, &cat)
	names := []string{"A", "B", "C", "D", "E", "F"}
	items := make([]models.MenuItem, len(names))
	for i, n := range names {
		items[i] = models.MenuItem{Name: n, Price: testutil.Money("1"), CategoryID: cat.ID, PreparationTime: 5, IsAvailable: true}
		testutil.Create(t, gdb, &items[i])
	}

	yesterday := testutil.Order(t, gdb, 1, models.OrderStatusCompleted, "1", time.Date(2026, 3, 9, 1, 0, 0, 0, time.UTC))
	old := testutil.Order(t, gdb, 1, models.OrderStatusCompleted, "1", time.Date(2026, 3, 8, 23, 0, 0, 0, time.UTC))
	for i := range items {
		testutil.Create(t, gdb, &models.OrderItem{OrderID: yesterday.ID, MenuItemID: items[i].ID, Quantity: i + 1})
	}
	testutil.Create(t, gdb, &models.OrderItem{OrderID: old.ID, MenuItemID: items[0].ID, Quantity: 100})

	svc := &DashboardService{Repo: r, Clock: fixedClock(now)}
	st, err := svc.Stats(context.Background())
	require.NoError(t, err)

	require.Len(t, st.PopularItems, 5)
	assert.Equal(t, "F", st.PopularItems[0].Name)
	assert.EqualValues(t, 6, st.PopularItems[0].TotalQuantity)
	assert.Equal(t, "B", st.PopularItems[4].Name)
}

func TestDashboardStats_AnyQueryFailureFailsWhole(t *testing.T) {
	r, gdb := newTestRepo(t)
	require.NoError(t, gdb.Migrator().DropTable(&models.Staff{}))

	svc := &DashboardService{Repo: r, Clock: fixedClock(time.Now().UTC())}
	st, err := svc.Stats(context.Background())
	require.Error(t, err)
	assert.Nil(t, st)
	assert.Contains(t, err.Error(), "active staff")
}
