package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant_ordering/internal/service"
	"github.com/Skotchmaster/restaurant_ordering/internal/transport"
	"github.com/Skotchmaster/restaurant_ordering/internal/util"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.list")

	limit, err := util.ParseIntDefault(c.QueryParam("limit"), service.DefaultUsersLimit)
	if err != nil {
		return badRequest(l, "list_users_error", "limit must be an integer", err)
	}
	offset, err := util.ParseIntDefault(c.QueryParam("offset"), 0)
	if err != nil {
		return badRequest(l, "list_users_error", "offset must be an integer", err)
	}

	total, users, err := h.Svc.ListUsers(ctx, offset, limit)
	if err != nil {
		return failure{Event: "list_users_error", Internal: "Failed to fetch users"}.from(l, err)
	}
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Data: users, Total: &total})
}

func (h *UserHTTP) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.update")

	var req transport.UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "update_user_error", invalidBody, err)
	}

	user, err := h.Svc.UpdateUser(ctx, req)
	if err != nil {
		return failure{
			Event:    "update_user_error",
			NotFound: "User not found",
			Internal: "Failed to update user",
		}.from(l, err)
	}
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Message: "User updated successfully", Data: user})
}
