package middleware

import (
	"net/http"

	"giveLocal/pkg/logger"
	jsonres "giveLocal/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler converts unhandled echo errors into the shared JSON shape.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", "path", c.Path(), err)
	}

	_ = c.JSON(code, jsonres.Error(http.StatusText(code), message, nil))
}
