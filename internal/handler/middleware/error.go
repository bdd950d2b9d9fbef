package middleware

import (
	"log/slog"
	"net/http"

	"workshop-booking/internal/handler/httperr"
	"workshop-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errPanic = errs.New("handler panicked")

// ErrorHandler renders errors that were attached to the context without a response being written.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		// newest first: the last recorded error is the one that aborted the request
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if resp, ok := err.Meta.(httperr.Response); ok && err.IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		last := c.Errors.Last().Err
		status, msg := httperr.StatusFor(last)
		c.JSON(status, httperr.NewResponse(status, msg, nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("Recovered from panic",
					slog.Any("panic", rec),
					slog.String("request_id", GetRequestID(c)),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
				)

				_ = c.Error(errs.Wrapf(errPanic, "%v", rec))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
