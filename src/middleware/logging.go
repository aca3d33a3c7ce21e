package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LoggingMiddleware logs all HTTP requests with structured fields
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		var event *zerolog.Event
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		default:
			event = log.Info()
		}

		event.
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("route", c.FullPath()).
			Int("status", status).
			Dur("duration", duration).
			Int("bytes", c.Writer.Size()).
			Str("client_ip", c.ClientIP())

		if query != "" {
			event.Str("query", query)
		}

		if claims, ok := GetClaims(c); ok {
			event.Str("admin_email", claims.Email).Str("role", claims.Role.String())
		}

		if len(c.Errors) > 0 {
			event.Str("error", c.Errors.String())
		}

		switch {
		case status >= 500:
			event.Msg("server error")
		case status >= 400:
			event.Msg("client error")
		default:
			event.Msg("request")
		}
	}
}
