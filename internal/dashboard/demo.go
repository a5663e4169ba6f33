package dashboard

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

const (
	demoDays           = 7
	defaultBaseOrders  = 2
	defaultBaseRevenue = "11.98"
)

// DemoSeriesGenerator synthesizes chart series when the analytics endpoints
// can't be reached. Anything it produces is shown as demo data.
type DemoSeriesGenerator interface {
	Orders(baseOrders int64, end time.Time) []DayPoint
	Revenue(baseRevenue decimal.Decimal, end time.Time) []RevenuePoint
}

// RandomDemo scales pseudo-random noise from the real totals. A nil Rand uses
// the package-level source.
type RandomDemo struct {
	Rand *rand.Rand
}

func (g RandomDemo) float() float64 {
	if g.Rand == nil {
		return rand.Float64()
	}
	return g.Rand.Float64()
}

// scaled returns base * [lo, lo+span).
func (g RandomDemo) scaled(base, lo, span float64) float64 {
	return base * (lo + g.float()*span)
}

// Orders returns demoDays points ending at end, oldest first.
func (g RandomDemo) Orders(baseOrders int64, end time.Time) []DayPoint {
	if baseOrders <= 0 {
		baseOrders = defaultBaseOrders
	}
	base := float64(baseOrders)

	out := make([]DayPoint, 0, demoDays)
	for i := demoDays - 1; i >= 0; i-- {
		out = append(out, DayPoint{
			Date:            end.AddDate(0, 0, -i).Format(time.DateOnly),
			OrderCount:      int64(math.Floor(g.scaled(base, 0.8, 0.4))),
			CompletedOrders: int64(math.Floor(g.scaled(base, 0.7, 0.3))),
			DailyRevenue:    decimal.NewFromFloat(g.scaled(base*6, 0.8, 0.4)).Round(2),
		})
	}
	return out
}

func (g RandomDemo) Revenue(baseRevenue decimal.Decimal, end time.Time) []RevenuePoint {
	if !baseRevenue.IsPositive() {
		baseRevenue = decimal.RequireFromString(defaultBaseRevenue)
	}
	base := baseRevenue.InexactFloat64()

	out := make([]RevenuePoint, 0, demoDays)
	for i := demoDays - 1; i >= 0; i-- {
		out = append(out, RevenuePoint{
			Period:  end.AddDate(0, 0, -i).Format(time.DateOnly),
			Revenue: decimal.NewFromFloat(g.scaled(base, 0.7, 0.6)).Round(2),
		})
	}
	return out
}
