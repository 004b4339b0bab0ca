package middleware

import (
	"net/http"
	"time"

	"contacts/config"

	"github.com/labstack/echo/v4"
)

// ResponseHeaders adds the configured headers, in order, before the handler runs.
func ResponseHeaders(headers []config.HeaderConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			for _, header := range headers {
				if header.Key == "" {
					continue
				}
				h.Add(header.Key, header.Value)
			}

			return next(c)
		}
	}
}

// LastModified stamps list responses with the time they were rendered.
func LastModified(now func() time.Time) echo.MiddlewareFunc {
	if now == nil {
		now = time.Now
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderLastModified, now().UTC().Format(http.TimeFormat))

			return next(c)
		}
	}
}
