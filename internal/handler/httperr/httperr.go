// Package httperr carries the storefront's error envelope through gin's
// error stack so the error-collector middleware can render it once, after
// the handler chain finishes.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON error body. Status never serializes; the middleware
// reads it off the attached Meta to pick the HTTP code.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the context for the request log and aborts
// with the rendered envelope. msg is what the storefront client sees; err is
// what operators see.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
