package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant_ordering/pkg/db"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

type Deps struct {
	APIPrefix string
	DB        *gorm.DB

	Dashboard  *DashboardHTTP
	Menu       *MenuHTTP
	Categories *CategoryHTTP
	Users      *UserHTTP
	Staff      *StaffHTTP
	Auth       *AuthHTTP

	// AdminAuth guards admin routes; nil leaves them open.
	AdminAuth echo.MiddlewareFunc
}

type Route struct {
	Method  string
	Path    string
	Handler echo.HandlerFunc
	Admin   bool
}

// Routes is the full API table, relative to APIPrefix.
func (d *Deps) Routes() []Route {
	return []Route{
		{http.MethodPost, "/customer-auth", d.Auth.CustomerLogin, false},
		{http.MethodPost, "/customer-signup", d.Auth.CustomerSignup, false},
		{http.MethodPost, "/admin-auth", d.Auth.AdminLogin, false},

		{http.MethodGet, "/menu", d.Menu.PublicMenu, false},
		{http.MethodGet, "/menu/search", d.Menu.Search, false},

		{http.MethodGet, "/admin-dashboard", d.Dashboard.GetStats, true},
		{http.MethodGet, "/admin-management", d.Dashboard.GetStats, true},
		{http.MethodGet, "/orders-analytics", d.Dashboard.GetOrdersAnalytics, true},
		{http.MethodGet, "/revenue-report", d.Dashboard.GetRevenueReport, true},

		{http.MethodGet, "/menu-items", d.Menu.ListMenuItems, true},
		{http.MethodPost, "/menu-items", d.Menu.CreateMenuItem, true},
		{http.MethodPut, "/menu-items", d.Menu.UpdateMenuItem, true},

		{http.MethodGet, "/categories", d.Categories.ListCategories, true},
		{http.MethodPost, "/categories", d.Categories.CreateCategory, true},
		{http.MethodPut, "/categories", d.Categories.UpdateCategory, true},

		{http.MethodGet, "/users", d.Users.ListUsers, true},
		{http.MethodPut, "/users", d.Users.UpdateUser, true},

		{http.MethodGet, "/staff", d.Staff.ListStaff, true},
		{http.MethodPost, "/staff", d.Staff.CreateStaff, true},
		{http.MethodPut, "/staff", d.Staff.UpdateStaff, true},
	}
}

// ValidateRoutes rejects tables with nil handlers, malformed paths or
// duplicate (method, path) pairs.
func ValidateRoutes(routes []Route) error {
	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		if r.Method == "" || len(r.Path) < 2 || r.Path[0] != '/' {
			return fmt.Errorf("route %s %q: malformed", r.Method, r.Path)
		}
		if r.Handler == nil {
			return fmt.Errorf("route %s %s: nil handler", r.Method, r.Path)
		}
		key := r.Method + " " + r.Path
		if seen[key] {
			return fmt.Errorf("route %s: registered twice", key)
		}
		seen[key] = true
	}
	return nil
}

// Register mounts the health checks at the root and the API table under
// APIPrefix. It fails before adding any API route when the table is invalid.
func Register(e *echo.Echo, d *Deps) error {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", d.ready)

	if d.Dashboard == nil || d.Menu == nil || d.Categories == nil || d.Users == nil || d.Staff == nil || d.Auth == nil {
		return fmt.Errorf("httpserver: missing handler group in deps")
	}
	routes := d.Routes()
	if err := ValidateRoutes(routes); err != nil {
		return err
	}

	api := e.Group(d.APIPrefix)
	for _, r := range routes {
		var mw []echo.MiddlewareFunc
		if r.Admin && d.AdminAuth != nil {
			mw = append(mw, d.AdminAuth)
		}
		api.Add(r.Method, r.Path, r.Handler, mw...)
	}
	return nil
}

func (d *Deps) ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := db.Ping(ctx, d.DB); err != nil {
		logging.FromContext(ctx).Warn("readiness_failed", "error", err)
		return c.NoContent(http.StatusServiceUnavailable)
	}
	return c.NoContent(http.StatusOK)
}
