package httperr

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Response is the error body every endpoint returns: {"error": ..., "details": ...}.
type Response struct {
	Status  int    `json:"-"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, details string) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status, Error: msg, Details: details}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
