//go:build unit

package api_test

import (
	"net/http"

	"workshop-booking/internal/domain/user"
	"workshop-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	customerToken = "customer-token"
	operatorToken = "operator-token"
)

// fakeAuth stands in for RequireAuth: the bearer token picks the role.
func fakeAuth(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.GetHeader("Authorization") {
		case "Bearer " + customerToken:
			c.Set("user_id", userID)
			c.Set("user_role", user.RoleCustomer)
		case "Bearer " + operatorToken:
			c.Set("user_id", userID)
			c.Set("user_role", user.RoleOperator)
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Next()
	}
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())
	return engine
}
