package middleware

import (
	"github.com/google/uuid"

	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags each request with an id, honoring one supplied by the
// caller, and echoes it on the response.
func RequestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	c.Set("requestID", id)
	c.Writer.Header().Set(requestIDHeader, id)
	c.Next()
}
