package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Destoh2020/iesrform/internal/middleware"
)

func TestGetFormStatusEndpoint(t *testing.T) {
	env := newTestEnv()

	// First read lazily creates the status row in the open state.
	resp := env.do(t, http.MethodGet, "/api/form-status", nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	data := decodeJSON(t, resp)["data"].(map[string]any)
	assert.Equal(t, true, data["isOpen"])
}

func TestUpdateFormStatusEndpoint(t *testing.T) {
	env := newTestEnv()
	adminHeaders := map[string]string{middleware.AdminHeader: testAdminPassword}

	resp := env.do(t, http.MethodPut, "/api/form-status",
		gin.H{"isOpen": false, "updatedBy": "hr-admin"}, adminHeaders)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	data := decodeJSON(t, resp)["data"].(map[string]any)
	assert.Equal(t, false, data["isOpen"])
	assert.Equal(t, "hr-admin", data["updatedBy"])

	// The new state is visible to unauthenticated readers.
	resp = env.do(t, http.MethodGet, "/api/form-status", nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	data = decodeJSON(t, resp)["data"].(map[string]any)
	assert.Equal(t, false, data["isOpen"])

	resp = env.do(t, http.MethodPut, "/api/form-status",
		gin.H{"isOpen": true}, adminHeaders)
	require.Equal(t, http.StatusOK, resp.Code)
	data = decodeJSON(t, resp)["data"].(map[string]any)
	assert.Equal(t, true, data["isOpen"])
	assert.Equal(t, "hr-admin", data["updatedBy"])
}

func TestUpdateFormStatusEndpointAdminGate(t *testing.T) {
	env := newTestEnv()

	resp := env.do(t, http.MethodPut, "/api/form-status", gin.H{"isOpen": false}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "AUTH_001", errorCode(t, resp))

	resp = env.do(t, http.MethodPut, "/api/form-status", gin.H{"isOpen": false},
		map[string]string{middleware.AdminHeader: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// The form stays open after the rejected attempts.
	resp = env.do(t, http.MethodGet, "/api/form-status", nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	data := decodeJSON(t, resp)["data"].(map[string]any)
	assert.Equal(t, true, data["isOpen"])
}

func TestUpdateFormStatusEndpointValidation(t *testing.T) {
	env := newTestEnv()
	adminHeaders := map[string]string{middleware.AdminHeader: testAdminPassword}

	// isOpen is required; an empty body is rejected.
	resp := env.do(t, http.MethodPut, "/api/form-status", gin.H{}, adminHeaders)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "VAL_001", errorCode(t, resp))
}
