//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workshop-booking/internal/domain/user"
	"workshop-booking/internal/handler/middleware"
	"workshop-booking/internal/pkg/jwt"
	"workshop-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func mintToken(t *testing.T, userID uuid.UUID, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  gojwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(testSecret, "")))

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "operator": middleware.IsOperator(c)})
	}
	r.GET("/me", auth.RequireAuth(), whoami)
	r.GET("/admin", auth.RequireAuth(), auth.RequireOperator(), whoami)
	r.GET("/misconfigured", auth.RequireOperator(), whoami)
	return r
}

func doGet(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r := newAuthRouter()
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid customer token", "Bearer " + mintToken(t, userID, "customer", time.Hour), http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"expired token", "Bearer " + mintToken(t, userID, "customer", -time.Minute), http.StatusUnauthorized},
		{"unknown role", "Bearer " + mintToken(t, userID, "superuser", time.Hour), http.StatusUnauthorized},
		{"garbage", "Bearer not.a.jwt", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doGet(r, "/me", tc.header)
			assert.Equal(t, tc.wantStatus, w.Code, w.Body.String())
			if tc.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), userID.String())
			}
		})
	}

	t.Run("token signed with another secret", func(t *testing.T) {
		forged, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{UserID: userID, Role: "operator"}).
			SignedString([]byte("other-secret"))
		require.NoError(t, err)

		w := doGet(r, "/me", "Bearer "+forged)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireOperator(t *testing.T) {
	r := newAuthRouter()

	tests := []struct {
		name       string
		role       user.Role
		wantStatus int
	}{
		{"operator", user.RoleOperator, http.StatusOK},
		{"admin counts as operator", user.RoleAdmin, http.StatusOK},
		{"customer", user.RoleCustomer, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doGet(r, "/admin", "Bearer "+mintToken(t, uuid.New(), tc.role.String(), time.Hour))
			assert.Equal(t, tc.wantStatus, w.Code, w.Body.String())
		})
	}

	t.Run("without RequireAuth", func(t *testing.T) {
		w := doGet(r, "/misconfigured", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
