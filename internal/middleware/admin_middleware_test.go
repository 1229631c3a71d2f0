package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAdminTestRouter(mw *AdminMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin", mw.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func doAdminRequest(router *gin.Engine, password string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if password != "" {
		req.Header.Set(AdminHeader, password)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRequireAdminPlainPassword(t *testing.T) {
	router := newAdminTestRouter(NewAdminMiddleware("admin@2025", ""))

	assert.Equal(t, http.StatusNoContent, doAdminRequest(router, "admin@2025").Code)
	assert.Equal(t, http.StatusUnauthorized, doAdminRequest(router, "wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, doAdminRequest(router, "").Code)
}

func TestRequireAdminBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin@2025"), bcrypt.MinCost)
	require.NoError(t, err)

	// The hash takes precedence even when a plain password is also configured.
	router := newAdminTestRouter(NewAdminMiddleware("something-else", string(hash)))

	assert.Equal(t, http.StatusNoContent, doAdminRequest(router, "admin@2025").Code)
	assert.Equal(t, http.StatusUnauthorized, doAdminRequest(router, "something-else").Code)
	assert.Equal(t, http.StatusUnauthorized, doAdminRequest(router, "").Code)
}
