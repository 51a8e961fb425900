package web

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const correlationIdHeader = "x-correlation-id"

// CurrentTimeFunc Current time. Can be mocked for testing.
var CurrentTimeFunc = time.Now

func StartRequest(c *gin.Context) {
	c.Set("requestStartTime", CurrentTimeFunc())
}

// CorrelationId takes the caller's correlation id, or makes one up, and
// echoes it back on the response.
func CorrelationId(c *gin.Context) {
	correlationId := c.GetHeader(correlationIdHeader)
	if correlationId == "" {
		correlationId = uuid.New().String()
	}

	c.Set("correlationId", correlationId)
	c.Header(correlationIdHeader, correlationId)
}
