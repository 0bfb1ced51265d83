// Package handlers implements the control API endpoints served by monstub.
//
// Every endpoint answers with the control API envelope. Logical failures
// (unknown host, missing field, unknown downtime id) are reported as
// {"success": false, "content": "<message>"} so clients can show the message
// verbatim; only authentication failures use a non-2xx status the client
// inspects.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every control API call returns.
type Response struct {
	Success bool `json:"success"`
	Content any  `json:"content"`
}

// respondOK writes a successful envelope.
func respondOK(c *gin.Context, content any) {
	c.JSON(http.StatusOK, Response{Success: true, Content: content})
}

// respondFailure writes a failed envelope carrying message as content.
func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: false, Content: message})
}

// HandleUnknownVerb answers requests for verbs the server does not know.
func HandleUnknownVerb(c *gin.Context) {
	respondFailure(c, http.StatusNotFound, "Unknown verb: "+c.Request.URL.Path)
}
