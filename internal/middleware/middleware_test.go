package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"charting-dashboard-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		hospitalID, scoped := GetHospitalIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user": userID, "hospital": hospitalID, "scoped": scoped})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	scoped, err := utils.GenerateToken("u1", "h1", testSecret, time.Minute)
	require.NoError(t, err)
	unscoped, err := utils.GenerateToken("u2", "", testSecret, time.Minute)
	require.NoError(t, err)
	foreign, err := utils.GenerateToken("u3", "h1", "another-secret", time.Minute)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"bad scheme", "Basic abc", http.StatusUnauthorized, "Invalid authorization header format"},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized, "Invalid token"},
		{"scoped token", "Bearer " + scoped, http.StatusOK, `"hospital":"h1","scoped":true,"user":"u1"`},
		{"unscoped token", "Bearer " + unscoped, http.StatusOK, `"hospital":"","scoped":false,"user":"u2"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			newAuthRouter().ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.body)
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())
}
