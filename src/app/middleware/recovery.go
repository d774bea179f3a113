package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"recruitadmin/src/app/http/response"
)

// Recovery converts a handler panic into a 500 with the standard error
// envelope. The panic value and stack go to the log only; the client sees a
// generic message plus the request id to quote when reporting it. Register
// this before every other middleware so nothing panics past it.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			requestID := GetRequestID(c)
			log.Error("panic recovered",
				"request_id", requestID,
				"panic", r,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"actor", c.GetHeader("X-Actor"),
				"stack", string(debug.Stack()),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error{
				Error: response.ErrorDetail{
					Code:      "INTERNAL_ERROR",
					Message:   "An unexpected error occurred",
					RequestID: requestID,
				},
			})
		}()
		c.Next()
	}
}
