package endpoint

import (
	"fmt"
	"strconv"

	"github.com/andriwidianto/securewatch/middleware"
	"github.com/andriwidianto/securewatch/model"
	"github.com/andriwidianto/securewatch/store"
	"github.com/andriwidianto/securewatch/util"
	"github.com/gin-gonic/gin"
)

func bindJSONOrRespond(c *gin.Context, dst interface{}, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
		return false
	}
	return true
}

func getStoreOrRespond(c *gin.Context) (store.Store, bool) {
	s := middleware.GetStore(c)
	if s == nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Internal server error", Err: fmt.Errorf("store is nil")})
		return nil, false
	}
	return s, true
}

func currentUserOrRespond(c *gin.Context) (*model.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.CallUserNotAuthorized(c, util.APIErrorParams{Msg: "Unauthorized", Err: fmt.Errorf("no authenticated user in context")})
		return nil, false
	}
	return user, true
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent, not a number, or not positive. An explicit limit=0
// must never disable the bound.
func queryInt(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
