package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/restaurant_ordering/internal/events"
	"github.com/Skotchmaster/restaurant_ordering/internal/repo"
	"github.com/Skotchmaster/restaurant_ordering/internal/service"
	"github.com/Skotchmaster/restaurant_ordering/internal/testutil"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

var envNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

type testEnv struct {
	T    *testing.T
	E    *echo.Echo
	DB   *gorm.DB
	Deps *Deps
	Logs *bytes.Buffer
}

func newTestEnv(t *testing.T, opts ...func(*Deps)) *testEnv {
	t.Helper()

	gdb := testutil.NewDB(t)
	r := &repo.GormRepo{DB: gdb}
	clock := service.Clock{Now: func() time.Time { return envNow }, Loc: time.UTC}
	pub := events.Nop{}

	deps := &Deps{
		APIPrefix: "/api",
		DB:        gdb,
		Dashboard: &DashboardHTTP{
			Stats:   &service.DashboardService{Repo: r, Clock: clock},
			Reports: &service.ReportService{Repo: r, Clock: clock},
		},
		Menu:       &MenuHTTP{Svc: &service.MenuService{Repo: r, Events: pub}},
		Categories: &CategoryHTTP{Svc: &service.CategoryService{Repo: r, Events: pub}},
		Users:      &UserHTTP{Svc: &service.UserService{Repo: r, Events: pub}},
		Staff:      &StaffHTTP{Svc: &service.StaffService{Repo: r, Events: pub}},
		Auth: &AuthHTTP{Svc: &service.AuthService{
			Repo:   r,
			Tokens: service.LegacyTokens{Now: func() time.Time { return envNow }},
			Events: pub,
		}},
	}
	for _, opt := range opts {
		opt(deps)
	}

	logs := &bytes.Buffer{}
	e := New(logging.NewWithWriter(logs, "debug"))
	require.NoError(t, Register(e, deps))

	return &testEnv{T: t, E: e, DB: gdb, Deps: deps, Logs: logs}
}

func (env *testEnv) doJSONRequest(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	env.T.Helper()

	var rdr *bytes.Reader
	switch b := body.(type) {
	case nil:
		rdr = bytes.NewReader(nil)
	case string:
		rdr = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(env.T, err)
		rdr = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func okStatus(t *testing.T, want int, rec *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, want, rec.Code, rec.Body.String())
}
