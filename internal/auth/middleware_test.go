package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamereviews/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("middleware-secret")

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(OptionalAuthMiddleware(secret))
	router.GET("/whoami", func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.String(http.StatusOK, id)
	})
	router.GET("/private", RequireSession(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func get(router *gin.Engine, path, header string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOptionalAuthMiddleware(t *testing.T) {
	router := newRouter()
	token, err := jwt.GenerateToken(secret, "65f1c0ffee0123456789abcd", time.Hour)
	require.NoError(t, err)

	w := get(router, "/whoami", "Bearer "+token)
	assert.Equal(t, "65f1c0ffee0123456789abcd", w.Body.String())

	w = get(router, "/whoami", "Bearer garbage")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = get(router, "/whoami", "Token "+token)
	assert.Empty(t, w.Body.String())
}

func TestRequireSession(t *testing.T) {
	router := newRouter()
	token, err := jwt.GenerateToken(secret, "65f1c0ffee0123456789abcd", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(router, "/private", "").Code)
	assert.Equal(t, http.StatusNoContent, get(router, "/private", "Bearer "+token).Code)
}
