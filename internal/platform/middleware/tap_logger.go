package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type branded interface {
	Brand() string
}

// TapLogger narrows the request logger down to one search operation against
// the resolved platform. It has to run after PreparePlatform.
func TapLogger(c *gin.Context) {
	logger := c.MustGet("logger").(*zerolog.Logger)

	context := logger.
		With().
		Str("platform", c.Params.ByName("platform")).
		Str("operationId", uuid.New().String())

	if platform, ok := c.Get(PlatformKey); ok {
		if b, ok := platform.(branded); ok {
			context = context.Str("brand", b.Brand())
		}
	}

	requestLogger := context.Logger()
	c.Set("logger", &requestLogger)
}
