package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func writeJSON(c echo.Context, status int, v any) error {
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.JSON(status, v)
}

// writeError логирует 5xx и отдаёт тело по MapError
func writeError(c echo.Context, err error) error {
	status, body := MapError(err)
	if status >= http.StatusInternalServerError {
		log.WithFields(log.Fields{
			"path":       c.Path(),
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		}).WithError(err).Error("request failed")
	}
	return writeJSON(c, status, body)
}

func DefaultHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if he, ok := err.(*echo.HTTPError); ok {
		_ = writeJSON(c, he.Code, map[string]any{
			"code":    http.StatusText(he.Code),
			"message": he.Message,
		})
		return
	}
	log.WithError(err).Error("unhandled error")
	_ = writeJSON(c, http.StatusInternalServerError, APIError{Code: "internal", Message: "internal error"})
}
