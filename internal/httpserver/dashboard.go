package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant_ordering/internal/service"
	"github.com/Skotchmaster/restaurant_ordering/internal/transport"
	"github.com/Skotchmaster/restaurant_ordering/internal/util"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

type DashboardHTTP struct {
	Stats   *service.DashboardService
	Reports *service.ReportService
}

func (h *DashboardHTTP) GetStats(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard.stats")

	stats, err := h.Stats.Stats(ctx)
	if err != nil {
		return failure{Event: "dashboard_stats_error", Internal: "Failed to fetch dashboard stats"}.from(l, err)
	}
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Data: stats})
}

func (h *DashboardHTTP) GetOrdersAnalytics(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard.orders_analytics")

	days, err := util.ParseIntDefault(c.QueryParam("days"), service.DefaultAnalyticsDays)
	if err != nil {
		return badRequest(l, "orders_analytics_error", "days must be a positive integer", err)
	}

	rows, err := h.Reports.OrdersAnalytics(ctx, days)
	if err != nil {
		return failure{Event: "orders_analytics_error", Internal: "Failed to fetch analytics"}.from(l, err)
	}
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Data: rows})
}

func (h *DashboardHTTP) GetRevenueReport(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard.revenue_report")

	requested := c.QueryParam("period")
	if requested == "" {
		requested = string(service.PeriodMonth)
	}

	rows, err := h.Reports.RevenueReport(ctx, service.ParsePeriod(requested))
	if err != nil {
		return failure{Event: "revenue_report_error", Internal: "Failed to fetch revenue report"}.from(l, err)
	}
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Data: rows, Period: requested})
}
