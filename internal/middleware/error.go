package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Recovery turns a panic in a handler into a 500 with a generic body. The
// panic value and stack are logged, never sent to the client.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				panicRecoveries.Inc()
				log.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(RequestIDKey)),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Unexpected server error"})
			}
		}()
		c.Next()
	}
}
