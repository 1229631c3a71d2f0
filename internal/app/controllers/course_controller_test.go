package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Destoh2020/iesrform/internal/app/models"
)

func TestListCoursesEndpoint(t *testing.T) {
	env := newTestEnv()
	env.seedCourse("Project Management", models.CategoryShortProfessional)
	env.seedCourse("Strategic Leadership Development", models.CategoryShortProfessional)
	env.seedCourse("MSc Energy Management", models.CategoryAcademic)

	resp := env.do(t, http.MethodGet, "/api/courses", nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	data, ok := decodeJSON(t, resp)["data"].([]any)
	require.True(t, ok)
	assert.Len(t, data, 3)

	resp = env.do(t, http.MethodGet, "/api/courses?category=academic", nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	data = decodeJSON(t, resp)["data"].([]any)
	require.Len(t, data, 1)
	course := data[0].(map[string]any)
	assert.Equal(t, "MSc Energy Management", course["name"])
}

func TestListCoursesEndpointInvalidCategory(t *testing.T) {
	env := newTestEnv()

	resp := env.do(t, http.MethodGet, "/api/courses?category=evening", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "VAL_001", errorCode(t, resp))
}

func TestGetCourseByIDEndpoint(t *testing.T) {
	env := newTestEnv()
	course := env.seedCourse("Project Management", models.CategoryShortProfessional)

	resp := env.do(t, http.MethodGet, "/api/courses/1", nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	data := decodeJSON(t, resp)["data"].(map[string]any)
	assert.Equal(t, course.Name, data["name"])
	assert.Equal(t, "short_professional", data["category"])

	resp = env.do(t, http.MethodGet, "/api/courses/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Equal(t, "RES_001", errorCode(t, resp))

	resp = env.do(t, http.MethodGet, "/api/courses/abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "VAL_001", errorCode(t, resp))
}

func TestCreateCourseEndpoint(t *testing.T) {
	env := newTestEnv()

	resp := env.do(t, http.MethodPost, "/api/courses", gin.H{
		"name":        "Data Analytics and Visualization",
		"category":    "short_professional",
		"description": "Data-driven decision making",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	data := decodeJSON(t, resp)["data"].(map[string]any)
	assert.Equal(t, "Data Analytics and Visualization", data["name"])
	// Active unless explicitly disabled.
	assert.Equal(t, true, data["isActive"])

	resp = env.do(t, http.MethodGet, "/api/courses", nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	list := decodeJSON(t, resp)["data"].([]any)
	assert.Len(t, list, 1)
}

func TestCreateCourseEndpointValidation(t *testing.T) {
	env := newTestEnv()

	resp := env.do(t, http.MethodPost, "/api/courses", gin.H{
		"name":     "Evening Class",
		"category": "evening",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "VAL_001", errorCode(t, resp))

	resp = env.do(t, http.MethodPost, "/api/courses", gin.H{
		"category": "academic",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateCourseEndpointInactive(t *testing.T) {
	env := newTestEnv()

	resp := env.do(t, http.MethodPost, "/api/courses", gin.H{
		"name":     "Archived Course",
		"category": "academic",
		"isActive": false,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.Code)

	// Inactive courses are hidden from listings.
	resp = env.do(t, http.MethodGet, "/api/courses", nil, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	list := decodeJSON(t, resp)["data"].([]any)
	assert.Empty(t, list)
}
