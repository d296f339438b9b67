package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stemsi/asts-console/internal/logger"
)

// ContextKeyRequestID is the Gin context key for the request ID.
const ContextKeyRequestID = "request_id"

// RequestIDMiddleware generates a unique request ID for every request and
// propagates it to the request context for downstream logging.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, reqID)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), reqID))
		c.Header("X-Request-ID", reqID)
		c.Next()
	}
}
