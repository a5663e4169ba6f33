package dashboard

import "github.com/shopspring/decimal"

type Metrics struct {
	TotalOrders     int64
	CompletedOrders int64
	// CompletionRate is a percentage rounded to one decimal place.
	CompletionRate decimal.Decimal
	TotalRevenue   decimal.Decimal
	AvgOrderValue  decimal.Decimal
}

// Performance sums an orders series. Rate and average are zero when there is
// nothing to divide by.
func Performance(points []DayPoint) Metrics {
	var m Metrics
	for _, p := range points {
		m.TotalOrders += p.OrderCount
		m.CompletedOrders += p.CompletedOrders
		m.TotalRevenue = m.TotalRevenue.Add(p.DailyRevenue)
	}
	if m.TotalOrders > 0 {
		m.CompletionRate = decimal.NewFromInt(m.CompletedOrders * 100).
			Div(decimal.NewFromInt(m.TotalOrders)).Round(1)
	}
	if m.CompletedOrders > 0 {
		m.AvgOrderValue = m.TotalRevenue.Div(decimal.NewFromInt(m.CompletedOrders)).Round(2)
	}
	return m
}
