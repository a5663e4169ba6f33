package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant_ordering/internal/service"
	"github.com/Skotchmaster/restaurant_ordering/internal/transport"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

type CategoryHTTP struct {
	Svc *service.CategoryService
}

func (h *CategoryHTTP) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.list")

	cats, err := h.Svc.ListCategories(ctx)
	if err != nil {
		return failure{Event: "list_categories_error", Internal: "Failed to fetch categories"}.from(l, err)
	}
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Data: cats})
}

func (h *CategoryHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.create")

	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_category_error", invalidBody, err)
	}

	cat, err := h.Svc.CreateCategory(ctx, req)
	if err != nil {
		return failure{Event: "create_category_error", Internal: "Failed to create category"}.from(l, err)
	}
	return c.JSON(http.StatusCreated, transport.Envelope{Success: true, Message: "Category created successfully", Data: cat})
}

func (h *CategoryHTTP) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "category.update")

	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "update_category_error", invalidBody, err)
	}

	cat, err := h.Svc.UpdateCategory(ctx, req)
	if err != nil {
		return failure{
			Event:    "update_category_error",
			NotFound: "Category not found",
			Internal: "Failed to update category",
		}.from(l, err)
	}
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Message: "Category updated successfully", Data: cat})
}
