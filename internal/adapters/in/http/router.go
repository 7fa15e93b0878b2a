package http

import (
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewEcho builds the echo instance: recovery, request logging, liveness,
// the OpenAPI document and the API routes.
func NewEcho(server *Server, doc *openapi3.T, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", openAPIHandler(doc))

	server.Register(e)
	return e
}

// RequestLogger writes one slog record per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "HTTP")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.RequestID != "" {
				attrs = append(attrs, "request_id", v.RequestID)
			}

			ctx := c.Request().Context()
			if v.Error != nil {
				logger.ErrorContext(ctx, "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(ctx, "request", attrs...)
			return nil
		},
	})
}
