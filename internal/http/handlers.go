package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type HealthzResponse struct {
	Status string `json:"status"`
}
type ReadyzResponse struct {
	Status string `json:"status"`
}

// Healthz liveness.
// @Summary     Liveness probe
// @Tags        meta
// @Produce     json
// @Success     200 {object} HealthzResponse
// @Router      /api/v1/healthz [get]
func Healthz(c echo.Context) error {
	return writeJSON(c, http.StatusOK, HealthzResponse{Status: "ok"})
}

// Pinger — хранилище ключей, готовность которого проверяет /readyz
type Pinger interface {
	Ping(ctx context.Context) error
}

// Readyz readiness (DB ping, если ключи хранятся в БД).
// @Summary     Readiness probe
// @Tags        meta
// @Produce     json
// @Success     200 {object} ReadyzResponse
// @Failure     503 {object} APIError
// @Router      /api/v1/readyz [get]
func Readyz(pool Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if pool == nil {
			return writeJSON(c, http.StatusOK, ReadyzResponse{Status: "ready"})
		}
		ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			return writeJSON(c, http.StatusServiceUnavailable, APIError{Code: "db_not_ready", Message: "db not ready"})
		}
		return writeJSON(c, http.StatusOK, ReadyzResponse{Status: "ready"})
	}
}

// StrictJSONBinder запрещает неизвестные поля
type StrictJSONBinder struct{}

func (StrictJSONBinder) Bind(i interface{}, c echo.Context) error {
	if ct := c.Request().Header.Get(echo.HeaderContentType); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil || mt != echo.MIMEApplicationJSON {
			return echo.ErrUnsupportedMediaType
		}
	}
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(i); err != nil {
		// пустое тело = запрос с нулевыми значениями
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
