package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Skotchmaster/restaurant_ordering/internal/models"
	"github.com/Skotchmaster/restaurant_ordering/internal/repo"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

const popularItemsLimit = 5

type DashboardService struct {
	Repo  *repo.GormRepo
	Clock Clock
}

// Stats runs the dashboard queries concurrently. The first failure cancels
// the rest and no partial result is returned.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	l := logging.FromContext(ctx).With("svc", "dashboard.stats")

	today := s.Clock.StartOfToday()
	yesterday := today.AddDate(0, 0, -1)
	todayUTC, yesterdayUTC := today.UTC(), yesterday.UTC()

	var st models.DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.Repo.CountOrders(gctx, time.Time{})
		st.TotalOrders = n
		return wrapQuery("total orders", err)
	})
	g.Go(func() error {
		n, err := s.Repo.CountOrders(gctx, todayUTC)
		st.TodayOrders = n
		return wrapQuery("today orders", err)
	})
	g.Go(func() error {
		rev, err := s.Repo.CompletedRevenue(gctx, time.Time{})
		st.TotalRevenue = rev.InexactFloat64()
		return wrapQuery("total revenue", err)
	})
	g.Go(func() error {
		rev, err := s.Repo.CompletedRevenue(gctx, todayUTC)
		st.TodayRevenue = rev.InexactFloat64()
		return wrapQuery("today revenue", err)
	})
	g.Go(func() error {
		n, err := s.Repo.CountUsers(gctx)
		st.TotalUsers = n
		return wrapQuery("total users", err)
	})
	g.Go(func() error {
		n, err := s.Repo.CountActiveStaff(gctx)
		st.ActiveStaff = n
		return wrapQuery("active staff", err)
	})
	g.Go(func() error {
		items, err := s.Repo.PopularItems(gctx, yesterdayUTC, popularItemsLimit)
		st.PopularItems = items
		return wrapQuery("popular items", err)
	})
	g.Go(func() error {
		counts, err := s.Repo.StatusCounts(gctx, todayUTC)
		st.OrderStatus = counts
		return wrapQuery("order status", err)
	})

	if err := g.Wait(); err != nil {
		l.Error("dashboard_stats_error", "error", err)
		return nil, err
	}
	return &st, nil
}

func wrapQuery(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}
