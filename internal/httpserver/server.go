package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/restaurant_ordering/internal/transport"
	"github.com/Skotchmaster/restaurant_ordering/pkg/logging"
	loggingmw "github.com/Skotchmaster/restaurant_ordering/pkg/middleware/logging"
)

// New builds the echo instance with the shared middleware chain and the
// envelope error handler. Routes are added by Register.
func New(base *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(base))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	return e
}

// ErrorHandler renders every error as a {success:false} envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var cause error = err

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else if he.Message != nil {
			msg = http.StatusText(code)
		}
		cause = he.Internal
	}

	switch {
	case code == http.StatusNotFound && msg == http.StatusText(http.StatusNotFound):
		msg = "Endpoint not found"
	case code == http.StatusMethodNotAllowed:
		msg = "Method not allowed"
	}

	body := transport.Envelope{Success: false, Message: msg}
	if code >= http.StatusInternalServerError && cause != nil {
		body.Error = cause.Error()
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, body)
	}
	if werr != nil {
		logging.FromContext(c.Request().Context()).Error("error_response_failed", "error", werr)
	}
}
