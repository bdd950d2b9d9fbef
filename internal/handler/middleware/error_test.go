//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"workshop-booking/internal/handler/middleware"
	"workshop-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/mapped", func(c *gin.Context) { _ = c.Error(commands.ErrSlotFull) })
	r.GET("/unknown", func(c *gin.Context) { _ = c.Error(errors.New("boom")) })
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/mapped", http.StatusConflict, "No available seats"},
		{"/unknown", http.StatusInternalServerError, "Internal server error"},
		{"/panic", http.StatusInternalServerError, "Internal server error"},
		{"/ok", http.StatusNoContent, ""},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			w := doGet(r, tc.path, "")
			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantBody != "" {
				assert.Contains(t, w.Body.String(), tc.wantBody)
			}
		})
	}
}
