package http_access_middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/ysn7199/yourmovies/core/internal/delivery/http/common"
)

const (
	ModeReadWrite = "RW"
	ModeReadOnly  = "RO"
)

const MsgReadOnly = "Write operations not allowed on read-only instance"

// ReadOnly rejects every non-GET request when mode is "RO". Used for replicas
// pointed at a read-only database.
func ReadOnly(mode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mode != ModeReadOnly {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		http_common.Abort(c, http.StatusBadGateway, MsgReadOnly)
	}
}
