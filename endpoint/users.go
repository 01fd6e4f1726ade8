package endpoint

import (
	"github.com/andriwidianto/securewatch/util"
	"github.com/gin-gonic/gin"
)

// ListUsers returns every account for the admin user table. Password hashes
// never serialize (the field is excluded from JSON). Admin only; the role
// gate runs before this handler.
func ListUsers(c *gin.Context) {
	s, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Users",
		Data: s.ListUsers(),
	})
}
