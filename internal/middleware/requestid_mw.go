package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries a stable per-request identifier for tracing
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key for the request identifier
const RequestIDKey = "requestID"

// RequestIDMiddleware ensures each request has a request identifier, reusing
// the caller-supplied one when present.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Set(RequestIDKey, reqID)
		c.Writer.Header().Set(RequestIDHeader, reqID)

		c.Next()
	}
}
