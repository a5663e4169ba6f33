package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant_ordering/internal/service"
	"github.com/Skotchmaster/restaurant_ordering/internal/transport"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

type StaffHTTP struct {
	Svc *service.StaffService
}

func (h *StaffHTTP) ListStaff(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "staff.list")

	staff, err := h.Svc.ListStaff(ctx)
	if err != nil {
		return failure{Event: "list_staff_error", Internal: "Failed to fetch staff"}.from(l, err)
	}
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Data: staff})
}

func (h *StaffHTTP) CreateStaff(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "staff.create")

	var req transport.StaffRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_staff_error", invalidBody, err)
	}

	member, err := h.Svc.CreateStaff(ctx, req)
	if err != nil {
		return failure{
			Event:    "create_staff_error",
			Conflict: "Staff ID already exists",
			Internal: "Failed to create staff member",
		}.from(l, err)
	}
	return c.JSON(http.StatusCreated, transport.Envelope{Success: true, Message: "Staff member created successfully", Data: member})
}

func (h *StaffHTTP) UpdateStaff(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "staff.update")

	var req transport.StaffRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "update_staff_error", invalidBody, err)
	}

	member, err := h.Svc.UpdateStaff(ctx, req)
	if err != nil {
		return failure{
			Event:    "update_staff_error",
			NotFound: "Staff member not found",
			Conflict: "Staff ID already exists",
			Internal: "Failed to update staff member",
		}.from(l, err)
	}
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Message: "Staff member updated successfully", Data: member})
}
