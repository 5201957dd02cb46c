package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	protocolVersion = "HTCPCP/1.0"
	protocolRFCs    = "RFC-2324, RFC-7168"
)

// protocolHeaders stamps every response with the HTCPCP protocol headers.
func protocolHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Protocol", protocolVersion)
		c.Header("X-RFC", protocolRFCs)
		c.Header("X-Powered-By", "Coffee")
		c.Next()
	}
}

// noRoute handles unrouted requests. A BREW aimed anywhere but a pot resource
// earns a 418 (RFC 2324 §2.1); everything else is a plain 404.
func (h *Handler) noRoute(c *gin.Context) {
	if c.Request.Method == methodBrew {
		if h.log != nil {
			h.log.Warnw("wrong_universe", "path", c.Request.URL.Path)
		}
		c.JSON(http.StatusTeapot, gin.H{
			"error":   "Wrong universe",
			"message": fmt.Sprintf("BREW is not valid on %s", c.Request.URL.Path),
			"hint":    "BREW is only valid on coffee:// or tea:// URIs — try /coffee/pot-1",
			"rfc":     "RFC 2324 §2.1",
		})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{
		"error": "Not Found",
		"path":  c.Request.URL.Path,
	})
}
