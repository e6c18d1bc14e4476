package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// OTelStatus wraps each request in a span and sets the span status from
// the HTTP response code, per the OTel HTTP semantic conventions:
// 1xx-4xx leave the status Unset, 5xx set Error.
func OTelStatus() echo.MiddlewareFunc {
	tracer := otel.Tracer("content-indexer")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			operationName := req.Method + " " + c.Path()

			ctx, span := tracer.Start(req.Context(), operationName)
			defer span.End()

			c.SetRequest(req.WithContext(ctx))

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			span.SetAttributes(semconv.HTTPResponseStatusCode(status))
			if status >= 500 {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			return err
		}
	}
}
