package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"recruitadmin/src/app/http/response"
	"recruitadmin/src/app/middleware"
)

// ActorHeader carries the acting user for audit stamping. Session handling is
// owned by an upstream gateway; by the time a request reaches this service
// the actor is just a trusted header.
const ActorHeader = "X-Actor"

// requireActor extracts the acting user or writes a 400 and returns false.
func requireActor(c *gin.Context) (string, bool) {
	actor := strings.TrimSpace(c.GetHeader(ActorHeader))
	if actor == "" {
		response.BadRequest(c, "missing "+ActorHeader+" header", middleware.GetRequestID(c))
		return "", false
	}
	return actor, true
}

// parseIDParam parses a positive int64 path parameter or writes a 400 and
// returns false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid "+name, middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}
