package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPerformance(t *testing.T) {
	m := Performance([]DayPoint{
		{OrderCount: 4, CompletedOrders: 3, DailyRevenue: decimal.RequireFromString("30.00")},
		{OrderCount: 2, CompletedOrders: 0, DailyRevenue: decimal.RequireFromString("0")},
		{OrderCount: 3, CompletedOrders: 3, DailyRevenue: decimal.RequireFromString("10.01")},
	})

	assert.EqualValues(t, 9, m.TotalOrders)
	assert.EqualValues(t, 6, m.CompletedOrders)
	assert.Equal(t, "66.7", m.CompletionRate.StringFixed(1))
	assert.Equal(t, "40.01", m.TotalRevenue.StringFixed(2))
	assert.Equal(t, "6.67", m.AvgOrderValue.StringFixed(2))
}

func TestPerformance_Empty(t *testing.T) {
	m := Performance(nil)
	assert.True(t, m.CompletionRate.IsZero())
	assert.True(t, m.AvgOrderValue.IsZero())

	m = Performance([]DayPoint{{OrderCount: 2}})
	assert.Equal(t, "0.0", m.CompletionRate.StringFixed(1))
	assert.True(t, m.AvgOrderValue.IsZero())
}
