package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/vbncursed/vkr/wallet-service/internal/config"
	issvc "github.com/vbncursed/vkr/wallet-service/internal/service"
)

// Router собирает echo с middleware и маршрутами; pinger может быть nil
func Router(svc *issvc.Service, pinger Pinger, cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())
	e.Use(requestLogger())
	e.Binder = StrictJSONBinder{}
	e.HTTPErrorHandler = DefaultHTTPErrorHandler

	// Swagger UI (включается флагом ENABLE_SWAGGER=1)
	if cfg.EnableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	v1 := e.Group("/api/v1")
	v1.GET("/healthz", Healthz)
	v1.GET("/readyz", Readyz(pinger))

	v1.POST("/classes", EnsureClass(svc))
	v1.POST("/save-links", CreateSaveLink(svc))
	v1.POST("/save-links/existing", CreateExistingLink(svc))

	// JWKS
	e.GET("/.well-known/keys", JWKS(svc))

	return e
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			log.WithFields(log.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"request_id": v.RequestID,
			}).Info("request")
			return nil
		},
	})
}
