package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/restaurant_ordering/internal/models"
	"github.com/Skotchmaster/restaurant_ordering/internal/repo"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

const (
	DefaultAnalyticsDays = 30
	MaxAnalyticsDays     = 365
)

// ParsePeriod falls back to month for anything it does not recognise.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodDay, PeriodWeek:
		return Period(s)
	default:
		return PeriodMonth
	}
}

type RevenueBucket struct {
	Period          string        `json:"period"`
	TotalOrders     int64         `json:"total_orders"`
	CompletedOrders int64         `json:"completed_orders"`
	Revenue         models.Money  `json:"revenue"`
	AvgOrderValue   *models.Money `json:"avg_order_value"`
}

type DailyBucket struct {
	Date            string        `json:"date"`
	OrderCount      int64         `json:"order_count"`
	CompletedOrders int64         `json:"completed_orders"`
	DailyRevenue    models.Money  `json:"daily_revenue"`
	AvgOrderValue   *models.Money `json:"avg_order_value"`
}

type ReportService struct {
	Repo  *repo.GormRepo
	Clock Clock
}

func (s *ReportService) RevenueReport(ctx context.Context, period Period) ([]RevenueBucket, error) {
	l := logging.FromContext(ctx).With("svc", "report.revenue", "period", string(period))

	today := s.Clock.StartOfToday()
	var since time.Time
	var key bucketKey
	switch period {
	case PeriodDay:
		since, key = today.AddDate(0, 0, -7), dayKey
	case PeriodWeek:
		since, key = today.AddDate(0, 0, -7*12), weekKey
	default:
		since, key = today.AddDate(0, -12, 0), monthKey
	}

	facts, err := s.Repo.OrderFacts(ctx, since.UTC())
	if err != nil {
		l.Error("revenue_report_error", "error", err)
		return nil, err
	}

	buckets := aggregate(facts, s.Clock.location(), key)
	out := make([]RevenueBucket, len(buckets))
	for i, b := range buckets {
		out[i] = RevenueBucket{
			Period:          b.label,
			TotalOrders:     b.total,
			CompletedOrders: b.completed,
			Revenue:         models.NewMoney(b.revenue),
			AvgOrderValue:   b.avgMoney(),
		}
	}
	return out, nil
}

// OrdersAnalytics buckets the trailing days by calendar day. days above
// MaxAnalyticsDays are clamped.
func (s *ReportService) OrdersAnalytics(ctx context.Context, days int) ([]DailyBucket, error) {
	if days < 1 {
		return nil, invalid("days must be a positive integer")
	}
	days = min(days, MaxAnalyticsDays)
	l := logging.FromContext(ctx).With("svc", "report.orders_analytics", "days", days)

	since := s.Clock.StartOfToday().AddDate(0, 0, -days)
	facts, err := s.Repo.OrderFacts(ctx, since.UTC())
	if err != nil {
		l.Error("orders_analytics_error", "error", err)
		return nil, err
	}

	buckets := aggregate(facts, s.Clock.location(), dayKey)
	out := make([]DailyBucket, len(buckets))
	for i, b := range buckets {
		out[i] = DailyBucket{
			Date:            b.label,
			OrderCount:      b.total,
			CompletedOrders: b.completed,
			DailyRevenue:    models.NewMoney(b.revenue),
			AvgOrderValue:   b.avgMoney(),
		}
	}
	return out, nil
}

type bucket struct {
	label     string
	start     time.Time
	total     int64
	completed int64
	revenue   decimal.Decimal
}

// avg is the mean completed order value, nil when nothing completed.
func (b bucket) avg() *decimal.Decimal {
	if b.completed == 0 {
		return nil
	}
	v := b.revenue.Div(decimal.NewFromInt(b.completed)).Round(2)
	return &v
}

func (b bucket) avgMoney() *models.Money {
	v := b.avg()
	if v == nil {
		return nil
	}
	m := models.NewMoney(*v)
	return &m
}

type bucketKey func(local time.Time) (label string, start time.Time)

func dayKey(t time.Time) (string, time.Time) {
	start := midnight(t)
	return start.Format("2006-01-02"), start
}

func weekKey(t time.Time) (string, time.Time) {
	year, week := t.ISOWeek()
	start := midnight(t)
	start = start.AddDate(0, 0, -((int(start.Weekday()) + 6) % 7))
	return fmt.Sprintf("%04d-W%02d", year, week), start
}

func monthKey(t time.Time) (string, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start.Format("2006-01"), start
}

// aggregate groups facts by key in loc and returns the non-empty buckets,
// most recent first.
func aggregate(facts []models.OrderFact, loc *time.Location, key bucketKey) []bucket {
	byLabel := make(map[string]*bucket)
	for _, f := range facts {
		label, start := key(f.CreatedAt.In(loc))
		b, ok := byLabel[label]
		if !ok {
			b = &bucket{label: label, start: start, revenue: decimal.Zero}
			byLabel[label] = b
		}
		b.total++
		if f.Status == models.OrderStatusCompleted {
			b.completed++
			b.revenue = b.revenue.Add(f.TotalAmount)
		}
	}

	out := make([]bucket, 0, len(byLabel))
	for _, b := range byLabel {
		out = append(out, *b)
	}
	slices.SortFunc(out, func(a, b bucket) int { return b.start.Compare(a.start) })
	return out
}
