package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant_ordering/internal/repo"
	"github.com/Skotchmaster/restaurant_ordering/internal/service"
	"github.com/Skotchmaster/restaurant_ordering/internal/transport"
	"github.com/Skotchmaster/restaurant_ordering/internal/util"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
)

type MenuHTTP struct {
	Svc *service.MenuService
}

func (h *MenuHTTP) ListMenuItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.list_items")

	var f repo.MenuItemFilter
	if raw := c.QueryParam("category_id"); raw != "" {
		id, err := util.ParseIntDefault(raw, 0)
		if err != nil || id < 1 {
			return badRequest(l, "list_menu_items_error", "category_id must be a positive integer", err)
		}
		catID := uint(id)
		f.CategoryID = &catID
	}
	if util.ParseBool(c.QueryParam("available_only")) {
		avail := true
		f.IsAvailable = &avail
	}

	items, err := h.Svc.ListMenuItems(ctx, f)
	if err != nil {
		return failure{Event: "list_menu_items_error", Internal: "Failed to fetch menu items"}.from(l, err)
	}
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Data: items})
}

func (h *MenuHTTP) CreateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.create_item")

	var req transport.MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_menu_item_error", invalidBody, err)
	}

	item, err := h.Svc.CreateMenuItem(ctx, req)
	if err != nil {
		return failure{Event: "create_menu_item_error", Internal: "Failed to create menu item"}.from(l, err)
	}

	l.Info("create_menu_item_success", "menu_item_id", item.ID)
	return c.JSON(http.StatusCreated, transport.Envelope{Success: true, Message: "Menu item created successfully", Data: item})
}

func (h *MenuHTTP) UpdateMenuItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.update_item")

	var req transport.MenuItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "update_menu_item_error", invalidBody, err)
	}

	item, err := h.Svc.UpdateMenuItem(ctx, req)
	if err != nil {
		return failure{
			Event:    "update_menu_item_error",
			NotFound: "Menu item not found",
			Internal: "Failed to update menu item",
		}.from(l, err)
	}

	l.Info("update_menu_item_success", "menu_item_id", item.ID)
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Message: "Menu item updated successfully", Data: item})
}

func (h *MenuHTTP) PublicMenu(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.public")

	menu, count, err := h.Svc.PublicMenu(ctx)
	if err != nil {
		return failure{Event: "public_menu_error", Internal: "Failed to fetch menu"}.from(l, err)
	}
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Data: menu, Count: &count})
}

func (h *MenuHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "menu.search")

	page, err := util.ParseIntDefault(c.QueryParam("page"), 1)
	if err != nil {
		return badRequest(l, "menu_search_error", "page must be an integer", err)
	}
	size, err := util.ParseIntDefault(c.QueryParam("size"), service.DefaultSearchPageSize)
	if err != nil {
		return badRequest(l, "menu_search_error", "size must be an integer", err)
	}

	total, items, err := h.Svc.Search(ctx, c.QueryParam("q"), page, size)
	if err != nil {
		return failure{Event: "menu_search_error", Internal: "Failed to search menu"}.from(l, err)
	}
	return c.JSON(http.StatusOK, transport.Envelope{Success: true, Data: items, Total: &total})
}
