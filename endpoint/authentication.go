package endpoint

import (
	"errors"
	"fmt"

	"github.com/andriwidianto/securewatch/model"
	"github.com/andriwidianto/securewatch/store"
	"github.com/andriwidianto/securewatch/util"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

type LoginResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// helper types to simplify the Login flow
type clientInfo struct {
	IP    string
	Agent string
}

func (ci clientInfo) ipPtr() *string {
	if ci.IP == "" {
		return nil
	}
	ip := ci.IP
	return &ip
}

func (ci clientInfo) agentPtr() *string {
	if ci.Agent == "" {
		return nil
	}
	agent := ci.Agent
	return &agent
}

// Login authenticates a user against the credential store and returns a
// bearer token plus the account without its password hash. Unknown
// identifier and wrong password produce byte-identical responses so the
// endpoint cannot be used to enumerate accounts.
func Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSONOrRespond(c, &req, "Username and password are required") {
		return
	}

	s, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	ci := clientInfo{IP: c.ClientIP(), Agent: c.Request.UserAgent()}

	user, found := resolveAccount(s, req.Username)
	if !found {
		failLogin(c, s, req.Username, ci, "user not found")
		return
	}
	if match, err := util.VerifyPassword(req.Password, user.Password); err != nil || !match {
		// A digest we cannot parse takes the same path as a wrong password.
		failLogin(c, s, req.Username, ci, "invalid password")
		return
	}

	token, err := util.IssueToken(user)
	if err != nil {
		util.LogLoginFailure(req.Username, ci.IP, ci.Agent, "token generation failed")
		util.CallServerError(c, util.APIErrorParams{Msg: "Internal server error", Err: err})
		return
	}

	s.CreateActivityLog(model.NewActivityLog{
		UserID:    &user.ID,
		Username:  emailOrUsername(user),
		Action:    "User login",
		IPAddress: ci.ipPtr(),
		UserAgent: ci.agentPtr(),
		Status:    model.StatusSuccess,
	})
	util.LogLoginSuccess(user.ID, user.Username, ci.IP, ci.Agent)

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Login successful",
		Data: LoginResponse{User: user, Token: token},
	})
}

// resolveAccount looks the identifier up as a username first, then as an
// email address.
func resolveAccount(s store.Store, identifier string) (*model.User, bool) {
	if user, err := s.GetUserByUsername(identifier); err == nil {
		return user, true
	}
	if user, err := s.GetUserByEmail(identifier); err == nil {
		return user, true
	}
	return nil, false
}

// failLogin durably records the failed attempt (one activity log, one
// warning security event) before the undifferentiated 401 goes out.
func failLogin(c *gin.Context, s store.Store, identifier string, ci clientInfo, reason string) {
	s.CreateActivityLog(model.NewActivityLog{
		Username:  identifier,
		Action:    "Failed login attempt",
		IPAddress: ci.ipPtr(),
		UserAgent: ci.agentPtr(),
		Status:    model.StatusFailed,
	})
	s.CreateSecurityEvent(model.NewSecurityEvent{
		Type:        model.EventTypeLoginAttempt,
		Description: fmt.Sprintf("Failed login attempt for user: %s", identifier),
		Severity:    model.SeverityWarning,
		IPAddress:   ci.ipPtr(),
	})
	util.LogLoginFailure(identifier, ci.IP, ci.Agent, reason)

	util.CallUserNotAuthorized(c, util.APIErrorParams{
		Msg: "Invalid credentials",
		Err: errors.New("invalid credentials"),
	})
}

func emailOrUsername(user *model.User) string {
	if user.Email != "" {
		return user.Email
	}
	return user.Username
}

// Logout records the logout for audit purposes. Tokens are stateless, so
// nothing is invalidated server-side; the client discards its token.
func Logout(c *gin.Context) {
	user, ok := currentUserOrRespond(c)
	if !ok {
		return
	}
	s, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	ci := clientInfo{IP: c.ClientIP(), Agent: c.Request.UserAgent()}
	s.CreateActivityLog(model.NewActivityLog{
		UserID:    &user.ID,
		Username:  emailOrUsername(user),
		Action:    "User logout",
		IPAddress: ci.ipPtr(),
		UserAgent: ci.agentPtr(),
		Status:    model.StatusSuccess,
	})
	util.LogLogout(user.ID, user.Username, ci.IP, ci.Agent)

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Logged out successfully"})
}

// Me returns the authenticated user attached by the auth gate.
func Me(c *gin.Context) {
	user, ok := currentUserOrRespond(c)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Authenticated user", Data: user})
}
