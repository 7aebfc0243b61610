// Package http is the tracker's inbound HTTP adapter built on echo.
package http

import (
	"log/slog"
	"net/http"

	"tracker/internal/generated/servers"
	"tracker/internal/metrics"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterConfig holds everything NewRouter wires together.
type RouterConfig struct {
	Server   servers.ServerInterface
	Document *openapi3.T
	Metrics  *metrics.TrackingMetrics
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
	LogLevel log.Lvl
}

// NewRouter builds the echo instance serving the API together with the
// operational routes /health, /metrics, /openapi.json and /swagger/*.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(cfg.LogLevel)

	validator, err := OpenAPIValidator(cfg.Document)
	if err != nil {
		return nil, err
	}

	rawDoc, err := registerSwaggerDoc(cfg.Document)
	if err != nil {
		return nil, err
	}

	e.Use(
		middleware.Recover(),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{
			Generator: uuid.NewString,
		}),
		RequestLogger(cfg.Logger.With("component", "http")),
		RequestMetrics(cfg.Metrics),
		validator,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, rawDoc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlers(e, cfg.Server)

	return e, nil
}
