package api

import (
	"time"

	"github.com/concave-dev/monctl/internal/logging"
	"github.com/concave-dev/monctl/internal/utils"
	"github.com/gin-gonic/gin"
)

// requestIDKey holds the request ID in the gin context.
const requestIDKey = "request_id"

// requestIDMiddleware echoes the client's X-Request-ID, or assigns one, so
// access log lines can be matched to client logs.
func (s *Server) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(utils.RequestIDHeader)
		if id == "" {
			var err error
			if id, err = utils.GenerateID(); err != nil {
				logging.Warn("Failed to generate request ID: %v", err)
			}
		}
		c.Set(requestIDKey, id)
		c.Header(utils.RequestIDHeader, id)
		c.Next()
	}
}

// loggingMiddleware provides request logging
func (s *Server) loggingMiddleware() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		// Log using our custom logger
		logging.Info("%s - [%s] %v \"%s %s %s %d %s \"%s\" %s\"",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Keys[requestIDKey],
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
		return ""
	})
}

// authMiddleware requires HTTP basic auth with the configured credentials.
// Mismatches get a 401 with a WWW-Authenticate challenge.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return gin.BasicAuthForRealm(gin.Accounts{s.user: s.password}, "monstub")
}
