package httperr

import (
	"workshop-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errUnspecified = errs.New("handler aborted without a cause")

// Response is the body of every non-2xx reply.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes the reply and leaves err on the context as a public gin error
// so the logging and error middleware see the cause behind the public message.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.Wrap(errUnspecified, msg)
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
