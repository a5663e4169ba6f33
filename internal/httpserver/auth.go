package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant_ordering/internal/service"
	"github.com/Skotchmaster/restaurant_ordering/internal/transport"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) CustomerLogin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.customer_login")

	var req transport.CustomerLoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "customer_login_error", invalidBody, err)
	}

	user, token, err := h.Svc.CustomerLogin(ctx, req)
	if err != nil {
		return failure{
			Event:        "customer_login_error",
			Unauthorized: "Invalid email or password",
			Internal:     "Login failed",
		}.from(l, err)
	}

	l.Info("customer_login_success", "user_id", user.ID)
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Message: "Login successful", User: user, Token: token})
}

func (h *AuthHTTP) CustomerSignup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.customer_signup")

	var req transport.SignupRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "customer_signup_error", invalidBody, err)
	}

	user, token, err := h.Svc.Signup(ctx, req)
	if err != nil {
		return failure{
			Event:    "customer_signup_error",
			Conflict: "User with this email already exists",
			Internal: "Signup failed",
		}.from(l, err)
	}

	l.Info("customer_signup_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, transport.Envelope{Success: true, Message: "Account created successfully", User: user, Token: token})
}

func (h *AuthHTTP) AdminLogin(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.admin_login")

	var req transport.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "admin_login_error", invalidBody, err)
	}

	admin, token, err := h.Svc.AdminLogin(ctx, req)
	if err != nil {
		return failure{
			Event:        "admin_login_error",
			Unauthorized: "Invalid username or password",
			Internal:     "Login failed",
		}.from(l, err)
	}

	l.Info("admin_login_success", "admin_id", admin.ID)
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Message: "Login successful", Admin: admin, Token: token})
}
