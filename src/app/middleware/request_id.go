// Package middleware contains HTTP middleware for the Gin router.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the correlation id between client and server.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key the id is stored under.
	RequestIDKey = "request_id"
)

// RequestID tags every request with a correlation id. An id supplied by the
// caller (a gateway or a retrying client) is kept as-is so traces line up
// across hops; otherwise a fresh UUID is minted. The id is stored on the gin
// context for logging and error envelopes, and echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request's correlation id, or "" before the
// RequestID middleware has run.
func GetRequestID(c *gin.Context) string {
	id, _ := c.Get(RequestIDKey)
	s, _ := id.(string)
	return s
}
