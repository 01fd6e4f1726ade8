package middleware

import (
	"fmt"
	"time"

	"github.com/andriwidianto/securewatch/util"
	"github.com/gin-gonic/gin"
)

// EndpointCallLogger logs each HTTP request as a security log line. These
// lines are operational only; they are not written to the audit store.
func EndpointCallLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		var userID, username string
		if user, ok := CurrentUser(c); ok {
			userID = user.ID
			username = user.Username
		}

		util.LogSecurityEvent(util.SecurityLogEntry{
			EventType: util.EventEndpointCall,
			UserID:    userID,
			Username:  username,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Message:   fmt.Sprintf("%s %s -> %d in %dms", c.Request.Method, c.Request.URL.Path, status, duration.Milliseconds()),
		})
	}
}
