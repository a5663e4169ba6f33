package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/restaurant_ordering/pkg/tokens"
)

func runAdmin(t *testing.T, m *BearerAuth, header string) (*httptest.ResponseRecorder, error, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin-dashboard", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := m.RequireAdmin(func(c echo.Context) error {
		called = true
		assert.Equal(t, "7", c.Get("user_id"))
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, err, called
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	return he.Code
}

func TestRequireAdmin(t *testing.T) {
	secret := []byte("s3cret")
	m := NewBearerAuth(secret)

	adminTok, err := tokens.Sign("7", tokens.RoleAdmin, time.Now().Add(time.Hour), secret)
	require.NoError(t, err)
	customerTok, err := tokens.Sign("7", tokens.RoleCustomer, time.Now().Add(time.Hour), secret)
	require.NoError(t, err)

	rec, err, called := runAdmin(t, m, "Bearer "+adminTok)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err, called = runAdmin(t, m, "")
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, err, called = runAdmin(t, m, "Bearer garbage")
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	_, err, called = runAdmin(t, m, "Bearer "+customerTok)
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, statusOf(t, err))
}
