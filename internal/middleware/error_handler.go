package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler turns unhandled errors into the JSON error shape used across
// the API. Unmatched routes surface as 404, everything unexpected as 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, map[string]string{"message": msg})
}
