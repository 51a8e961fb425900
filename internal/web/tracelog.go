package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RegisterLogger gives every request its own logger tagged with the
// correlation id.
func RegisterLogger(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestLogger := logger.
			With().
			Str("correlationId", c.MustGet("correlationId").(string)).
			Logger()

		c.Set("logger", &requestLogger)
	}
}

// TraceLog writes one line per request once every other handler is done.
// Server errors are logged at error level.
func TraceLog(c *gin.Context) {
	c.Next()

	logger := c.MustGet("logger").(*zerolog.Logger)
	startTime := c.MustGet("requestStartTime").(time.Time)

	event := logger.Info()
	if c.Writer.Status() >= http.StatusInternalServerError {
		event = logger.Error()
	}

	event.
		Str("label", "trace").
		Str("method", c.Request.Method).
		Str("url", c.Request.URL.Path).
		Str("query", c.Request.URL.RawQuery).
		Str("route", c.FullPath()).
		Int("code", c.Writer.Status()).
		Float64("duration", time.Since(startTime).Seconds()).
		Msg("")
}
