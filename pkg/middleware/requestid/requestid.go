// Package requestid tags each request with a correlation id so log lines
// belonging to one admin action can be grouped.
package requestid

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Header is the request id header, honored inbound and echoed outbound.
const Header = "X-Request-ID"

const contextKey = "request_id"

// Middleware keeps a caller-supplied request id and mints a fresh one
// otherwise.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(Header)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(contextKey, id)
		c.Writer.Header().Set(Header, id)

		c.Next()
	}
}

// Value returns the id assigned to this request, empty outside the
// middleware.
func Value(c *gin.Context) string {
	if v, exists := c.Get(contextKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
