package util

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Msg     string      `json:"msg"`
	Data    interface{} `json:"data"`
}

type APIErrorParams struct {
	Msg string
	Err error
}

type APISuccessParams struct {
	Msg  string
	Data interface{}
}

func errorResponse(params APIErrorParams) APIResponse {
	return APIResponse{
		Success: false,
		Error:   params.Err.Error(),
		Msg:     params.Msg,
		Data:    map[string]interface{}{},
	}
}

// CallUserError is for returning a validation failure from the user side
func CallUserError(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusBadRequest, errorResponse(params))
}

// CallUserNotAuthorized is for returning API response with status code 401
func CallUserNotAuthorized(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusUnauthorized, errorResponse(params))
}

// CallUserForbidden is for returning API response with status code 403,
// used when the identity is valid but the role requirement is not met
func CallUserForbidden(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusForbidden, errorResponse(params))
}

// CallErrorNotFound is for returning API response not found, used for
// requests to routes that do not exist
func CallErrorNotFound(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusNotFound, errorResponse(params))
}

// CallTooManyRequests is for returning API response with status code 429
func CallTooManyRequests(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusTooManyRequests, errorResponse(params))
}

// CallServerError is for returning API response server error. The detailed
// error is logged server-side only; the response body stays opaque so
// internals never leak to clients.
func CallServerError(c *gin.Context, params APIErrorParams) {
	log.Printf("server error on %s %s: %v", c.Request.Method, c.Request.URL.Path, params.Err)
	c.JSON(http.StatusInternalServerError, APIResponse{
		Success: false,
		Error:   "internal server error",
		Msg:     params.Msg,
		Data:    map[string]interface{}{},
	})
}

// CallSuccessOK is for returning API response with status code 200, you need to specify msg, and data as function parameter
func CallSuccessOK(c *gin.Context, params APISuccessParams) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Error:   "",
		Msg:     params.Msg,
		Data:    params.Data,
	})
}
