package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/restaurant_ordering/internal/models"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

// ErrUnauthenticated means there is no usable session; the caller should log in.
var ErrUnauthenticated = errors.New("dashboard: not logged in")

const (
	DefaultAnalyticsDays = 7
	DefaultReportPeriod  = "month"
)

type API interface {
	Stats(ctx context.Context, token string) (*models.DashboardStats, error)
	OrdersAnalytics(ctx context.Context, token string, days int) ([]DayPoint, error)
	RevenueReport(ctx context.Context, token, period string) ([]RevenuePoint, error)
}

type Renderer struct {
	API  API
	Demo DemoSeriesGenerator
	Now  func() time.Time

	Days   int
	Period string
}

// View is everything the dashboard shows for one session.
type View struct {
	Admin   *Admin
	Stats   *models.DashboardStats
	Orders  []DayPoint
	Revenue []RevenuePoint
	Period  string
	Demo    bool
	Metrics Metrics
}

// Build loads the stats and chart series for sess. Chart series fall back to
// the demo generator when either analytics call fails; stats failures are
// returned as is.
func (r *Renderer) Build(ctx context.Context, sess Session) (*View, error) {
	if !sess.Authenticated() {
		return nil, ErrUnauthenticated
	}
	l := logging.FromContext(ctx).With("component", "dashboard")

	days := r.Days
	if days < 1 {
		days = DefaultAnalyticsDays
	}
	period := r.Period
	if period == "" {
		period = DefaultReportPeriod
	}

	st, err := r.API.Stats(ctx, sess.Token)
	if err != nil {
		if unauthorized(err) {
			return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
		}
		return nil, fmt.Errorf("load stats: %w", err)
	}

	v := &View{Admin: sess.Admin, Stats: st, Period: period}

	orders, oerr := r.API.OrdersAnalytics(ctx, sess.Token, days)
	revenue, rerr := r.API.RevenueReport(ctx, sess.Token, period)
	if oerr != nil || rerr != nil {
		if r.Demo == nil {
			return nil, fmt.Errorf("load chart series: %w", errors.Join(oerr, rerr))
		}
		l.Warn("dashboard_demo_series", "orders_error", oerr, "revenue_error", rerr)

		now := time.Now()
		if r.Now != nil {
			now = r.Now()
		}
		v.Demo = true
		v.Orders = r.Demo.Orders(st.TotalOrders, now)
		v.Revenue = r.Demo.Revenue(decimal.NewFromFloat(st.TotalRevenue), now)
	} else {
		// the API answers newest first
		v.Orders = slices.Clone(orders)
		slices.Reverse(v.Orders)
		v.Revenue = slices.Clone(revenue)
		slices.Reverse(v.Revenue)
	}

	v.Metrics = Performance(v.Orders)
	return v, nil
}

func unauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		(apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}

// WriteText renders v as aligned plain-text tables.
func (v *View) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	demo := ""
	if v.Demo {
		demo = " [demo data]"
	}

	name := ""
	if v.Admin != nil {
		name = v.Admin.FullName
	}
	fmt.Fprintf(tw, "Sunrise admin dashboard\t%s\n\n", name)

	st := v.Stats
	fmt.Fprintf(tw, "Total Orders\t%d\n", st.TotalOrders)
	fmt.Fprintf(tw, "Today's Orders\t%d\n", st.TodayOrders)
	fmt.Fprintf(tw, "Total Revenue\t$%.2f\n", st.TotalRevenue)
	fmt.Fprintf(tw, "Today's Revenue\t$%.2f\n", st.TodayRevenue)
	fmt.Fprintf(tw, "Total Customers\t%d\n", st.TotalUsers)
	fmt.Fprintf(tw, "Active Staff\t%d\n\n", st.ActiveStaff)

	fmt.Fprintln(tw, "Popular items (last 24h)")
	if len(st.PopularItems) == 0 {
		fmt.Fprintln(tw, "  no orders yet")
	} else {
		fmt.Fprintln(tw, "  NAME\tORDERS\tQUANTITY")
		for _, p := range st.PopularItems {
			fmt.Fprintf(tw, "  %s\t%d\t%d\n", p.Name, p.OrderCount, p.TotalQuantity)
		}
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Order status (today)")
	if len(st.OrderStatus) == 0 {
		fmt.Fprintln(tw, "  no orders today")
	} else {
		for _, s := range st.OrderStatus {
			fmt.Fprintf(tw, "  %s\t%d\n", titleCase(s.Status), s.Count)
		}
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Orders by day%s\n", demo)
	fmt.Fprintln(tw, "  DATE\tORDERS\tCOMPLETED\tREVENUE")
	for _, p := range v.Orders {
		fmt.Fprintf(tw, "  %s\t%d\t%d\t$%s\n", p.Date, p.OrderCount, p.CompletedOrders, p.DailyRevenue.StringFixed(2))
	}
	fmt.Fprintln(tw)

	// demo revenue is always daily
	label := v.Period
	if v.Demo {
		label = "day"
	}
	fmt.Fprintf(tw, "Revenue by %s%s\n", label, demo)
	for _, p := range v.Revenue {
		fmt.Fprintf(tw, "  %s\t$%s\n", p.Period, p.Revenue.StringFixed(2))
	}
	fmt.Fprintln(tw)

	m := v.Metrics
	fmt.Fprintf(tw, "Performance%s\n", demo)
	fmt.Fprintf(tw, "  Total Orders\t%d\n", m.TotalOrders)
	fmt.Fprintf(tw, "  Completion Rate\t%s%%\n", m.CompletionRate.StringFixed(1))
	fmt.Fprintf(tw, "  Total Revenue\t$%s\n", m.TotalRevenue.StringFixed(2))
	fmt.Fprintf(tw, "  Avg Order Value\t$%s\n", m.AvgOrderValue.StringFixed(2))

	return tw.Flush()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
