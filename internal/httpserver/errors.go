package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/restaurant_ordering/internal/service"
)

// failure names the client message per outcome of a failed service call.
type failure struct {
	Event        string
	NotFound     string
	Conflict     string
	Unauthorized string
	Internal     string
}

func (f failure) from(l *slog.Logger, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		l.Warn(f.Event, "status", http.StatusBadRequest, "reason", verr.Msg)
		return echo.NewHTTPError(http.StatusBadRequest, verr.Msg)
	case errors.Is(err, service.ErrUnauthorized):
		l.Warn(f.Event, "status", http.StatusUnauthorized, "reason", f.Unauthorized, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, f.Unauthorized)
	case errors.Is(err, service.ErrNotFound):
		l.Warn(f.Event, "status", http.StatusNotFound, "reason", f.NotFound, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, f.NotFound)
	case errors.Is(err, service.ErrConflict):
		l.Warn(f.Event, "status", http.StatusConflict, "reason", f.Conflict, "error", err)
		return echo.NewHTTPError(http.StatusConflict, f.Conflict)
	case errors.Is(err, service.ErrUnavailable):
		l.Warn(f.Event, "status", http.StatusServiceUnavailable, "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Service unavailable")
	default:
		l.Error(f.Event, "status", http.StatusInternalServerError, "reason", f.Internal, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, f.Internal).SetInternal(err)
	}
}

func badRequest(l *slog.Logger, event, msg string, err error) error {
	l.Warn(event, "status", http.StatusBadRequest, "reason", msg, "error", err)
	return echo.NewHTTPError(http.StatusBadRequest, msg)
}

const invalidBody = "Invalid request body"
