package responding

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HandleError logs the failure with the request logger and aborts the chain
// with a JSON error body.
func HandleError(ctx *gin.Context, status int, message string, err error) {
	body := ErrorBody{Message: message}
	if err != nil {
		body.Details = err.Error()
	}

	if logger, ok := ctx.Get("logger"); ok {
		event := logger.(*zerolog.Logger).Error()
		if status < 500 {
			event = logger.(*zerolog.Logger).Warn()
		}

		event.
			Int("code", status).
			Err(err).
			Msg(message)
	}

	ctx.AbortWithStatusJSON(status, ErrorResponse{Error: body})
}
