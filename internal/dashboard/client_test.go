package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeAPI(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL + "/api/")
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestClient_Login(t *testing.T) {
	c := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/admin-auth", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "admin123" {
			writeJSON(w, http.StatusUnauthorized, `{"success":false,"message":"Invalid username or password"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"success":true,"message":"Login successful",
			"admin":{"id":1,"username":"admin","full_name":"Demo Admin"},"token":"admin-token-1-5"}`)
	})

	s, err := c.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "Demo Admin", s.Admin.FullName)
	assert.Equal(t, "admin-token-1-5", s.Token)

	_, err = c.Login(context.Background(), "admin", "nope")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid username or password", apiErr.Message)
}

func TestClient_Reports(t *testing.T) {
	c := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/admin-dashboard":
			writeJSON(w, http.StatusOK, `{"success":true,"data":{"total_orders":10,"today_orders":3,
				"total_revenue":25.5,"today_revenue":25.5,"total_users":4,"active_staff":2,
				"popular_items":[{"name":"Taco","order_count":2,"total_quantity":5}],"order_status":[]}}`)
		case "/api/orders-analytics":
			assert.Equal(t, "7", r.URL.Query().Get("days"))
			writeJSON(w, http.StatusOK, `{"success":true,"data":[{"date":"2026-03-10","order_count":3,
				"completed_orders":2,"daily_revenue":"25.5","avg_order_value":"12.75"}]}`)
		case "/api/revenue-report":
			assert.Equal(t, "week", r.URL.Query().Get("period"))
			writeJSON(w, http.StatusOK, `{"success":true,"period":"week","data":[{"period":"2026-W11","revenue":"25.50"}]}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"success":false,"message":"Endpoint not found"}`)
		}
	})
	ctx := context.Background()

	st, err := c.Stats(ctx, "tok")
	require.NoError(t, err)
	assert.EqualValues(t, 10, st.TotalOrders)
	assert.InDelta(t, 25.5, st.TotalRevenue, 0.001)
	require.Len(t, st.PopularItems, 1)

	days, err := c.OrdersAnalytics(ctx, "tok", 7)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "25.5", days[0].DailyRevenue.String())

	rev, err := c.RevenueReport(ctx, "tok", "week")
	require.NoError(t, err)
	require.Len(t, rev, 1)
	assert.Equal(t, "2026-W11", rev[0].Period)
}

func TestClient_ServerFailure(t *testing.T) {
	c := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := c.Stats(context.Background(), "tok")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
}
