package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"styleLoop/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the global echo HTTPErrorHandler: logs every unhandled
// error and answers with a uniform JSON body.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	logger.Error("http error",
		"method", c.Request().Method,
		"path", c.Path(),
		"status", code,
		"error", err,
	)

	if err := c.JSON(code, map[string]string{"message": message}); err != nil {
		logger.Error("failed to write error response", "error", err)
	}
}
