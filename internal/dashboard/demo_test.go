package dashboard

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demoEnd = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func seeded() RandomDemo {
	return RandomDemo{Rand: rand.New(rand.NewPCG(7, 11))}
}

func TestRandomDemo_OrdersWithinBounds(t *testing.T) {
	pts := seeded().Orders(10, demoEnd)
	require.Len(t, pts, 7)
	assert.Equal(t, "2026-03-04", pts[0].Date)
	assert.Equal(t, "2026-03-10", pts[6].Date)

	for _, p := range pts {
		assert.GreaterOrEqual(t, p.OrderCount, int64(8))
		assert.Less(t, p.OrderCount, int64(12))
		assert.GreaterOrEqual(t, p.CompletedOrders, int64(7))
		assert.Less(t, p.CompletedOrders, int64(10))
		assert.True(t, p.DailyRevenue.GreaterThanOrEqual(decimal.NewFromInt(48)), p.DailyRevenue.String())
		assert.True(t, p.DailyRevenue.LessThanOrEqual(decimal.NewFromInt(72)), p.DailyRevenue.String())
	}
}

func TestRandomDemo_DefaultsForEmptyTotals(t *testing.T) {
	for _, p := range seeded().Orders(0, demoEnd) {
		// base 2: orders in [1.6, 2.4), revenue in [9.6, 14.4)
		assert.Contains(t, []int64{1, 2}, p.OrderCount)
		assert.True(t, p.DailyRevenue.GreaterThanOrEqual(decimal.RequireFromString("9.6")))
	}

	lo, hi := decimal.RequireFromString("8.38"), decimal.RequireFromString("15.58")
	rev := seeded().Revenue(decimal.Zero, demoEnd)
	require.Len(t, rev, 7)
	for _, p := range rev {
		assert.True(t, p.Revenue.GreaterThanOrEqual(lo) && p.Revenue.LessThanOrEqual(hi), p.Revenue.String())
		assert.True(t, p.Revenue.Equal(p.Revenue.Round(2)))
	}
}

func TestRandomDemo_SameSeedSameSeries(t *testing.T) {
	assert.Equal(t, seeded().Orders(5, demoEnd), seeded().Orders(5, demoEnd))
}
