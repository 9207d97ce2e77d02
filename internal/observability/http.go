package observability

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

// EchoMiddleware returns the HTTP tracing middleware for the service.
func EchoMiddleware(serviceName string) echo.MiddlewareFunc {
	if strings.TrimSpace(serviceName) == "" {
		serviceName = "confhub"
	}
	return otelecho.Middleware(serviceName, otelecho.WithSkipper(func(c echo.Context) bool {
		switch c.Request().URL.Path {
		case "/healthz", "/favicon.ico":
			return true
		}
		return false
	}))
}

// EchoRequestMetadataMiddleware copies request id and matched route into the request context.
func EchoRequestMetadataMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route := strings.TrimSpace(c.Path())
			if route == "" {
				route = c.Request().URL.Path
			}
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			ctx := WithRequestMetadata(c.Request().Context(), requestID, route)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
