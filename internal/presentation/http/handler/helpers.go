package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/forkpoint/ordering-api/internal/presentation/http/middleware"
)

// sessionID returns the cart session id resolved by the session middleware.
func sessionID(c *gin.Context) string {
	return middleware.GetSessionID(c)
}

// parseBranchID parses a branch id path or query parameter.
func parseBranchID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
