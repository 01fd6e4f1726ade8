package endpoint

import (
	"github.com/andriwidianto/securewatch/util"
	"github.com/gin-gonic/gin"
)

const defaultSecurityEventLimit = 10

// ListSecurityEvents returns security events newest first, bounded by the
// limit query parameter.
func ListSecurityEvents(c *gin.Context) {
	s, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	limit := queryInt(c, "limit", defaultSecurityEventLimit)

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Security events",
		Data: s.ListSecurityEvents(limit),
	})
}

// ListUnresolvedSecurityEvents returns every unresolved security event,
// newest first. Admin only; the role gate runs before this handler.
func ListUnresolvedSecurityEvents(c *gin.Context) {
	s, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Unresolved security events",
		Data: s.ListUnresolvedSecurityEvents(),
	})
}
