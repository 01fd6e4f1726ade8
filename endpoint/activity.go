package endpoint

import (
	"github.com/andriwidianto/securewatch/util"
	"github.com/gin-gonic/gin"
)

const defaultActivityLogLimit = 20

// ListActivityLogs returns activity log records newest first, bounded by
// the limit and offset query parameters.
func ListActivityLogs(c *gin.Context) {
	s, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	limit := queryInt(c, "limit", defaultActivityLogLimit)
	offset := queryInt(c, "offset", 0)

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Activity logs",
		Data: s.ListActivityLogs(limit, offset),
	})
}
