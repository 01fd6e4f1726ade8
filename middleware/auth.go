package middleware

import (
	"fmt"
	"strings"

	"github.com/andriwidianto/securewatch/model"
	"github.com/andriwidianto/securewatch/util"
	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// Authentication is the per-request auth gate: it extracts the bearer
// token, verifies it, re-loads the user behind the token's subject id to
// catch role changes or deletions since issuance, and attaches the user to
// the context. Every failure responds 401 and aborts before any role check.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			rejectUnauthorized(c, "missing or malformed authorization header")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := util.ParseToken(tokenString)
		if err != nil {
			rejectUnauthorized(c, "invalid or expired token")
			return
		}

		s := GetStore(c)
		if s == nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Internal server error", Err: fmt.Errorf("store not available in context")})
			c.Abort()
			return
		}

		user, err := s.GetUser(claims.UserID)
		if err != nil {
			rejectUnauthorized(c, "token subject no longer exists")
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// RequireRole enforces a role requirement for an endpoint. It must run
// after Authentication. model.RoleAny admits every authenticated user.
func RequireRole(required model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			rejectUnauthorized(c, "no authenticated user in context")
			return
		}

		if !user.Role.Satisfies(required) {
			util.LogForbiddenAccess(user.ID, user.Username, c.ClientIP(), c.Request.URL.Path)
			util.CallUserForbidden(c, util.APIErrorParams{
				Msg: "Forbidden",
				Err: fmt.Errorf("role %s does not satisfy %s", user.Role, required),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by Authentication.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

func rejectUnauthorized(c *gin.Context, reason string) {
	util.LogUnauthorizedAccess(c.ClientIP(), c.Request.URL.Path, reason)
	util.CallUserNotAuthorized(c, util.APIErrorParams{
		Msg: "Unauthorized",
		Err: fmt.Errorf("%s", reason),
	})
	c.Abort()
}
