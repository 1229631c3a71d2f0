package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/Destoh2020/iesrform/internal/app/models"
	"github.com/Destoh2020/iesrform/internal/app/repositories"
	"github.com/Destoh2020/iesrform/internal/app/services"
	"github.com/Destoh2020/iesrform/internal/middleware"
)

const testAdminPassword = "admin@2025"

func init() {
	gin.SetMode(gin.TestMode)
}

// In-memory repository fakes, mirroring the sentinel errors of the pgx-backed
// repositories so the full service and error-translation stack is exercised
// over real HTTP round trips.

type fakeCourseRepo struct {
	courses []*models.Course
	nextID  int64
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	r.nextID++
	course.ID = r.nextID
	course.CreatedAt = time.Now()
	r.courses = append(r.courses, course)
	return nil
}

func (r *fakeCourseRepo) GetActiveByID(_ context.Context, id int64) (*models.Course, error) {
	for _, c := range r.courses {
		if c.ID == id && c.IsActive {
			return c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeCourseRepo) GetAllActive(_ context.Context, category *models.CourseCategory) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range r.courses {
		if !c.IsActive {
			continue
		}
		if category != nil && c.Category != *category {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

type fakeApplicationRepo struct {
	apps   []*models.Application
	nextID int64
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *models.Application) error {
	for _, a := range r.apps {
		if a.StaffNumber == app.StaffNumber {
			return repositories.ErrApplicationExists
		}
	}
	r.nextID++
	app.ID = r.nextID
	app.CreatedAt = time.Now()
	stored := *app
	r.apps = append(r.apps, &stored)
	return nil
}

func (r *fakeApplicationRepo) GetByStaffNumber(_ context.Context, staffNumber string) (*models.Application, error) {
	for _, a := range r.apps {
		if a.StaffNumber == staffNumber {
			copied := *a
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeApplicationRepo) GetAll(_ context.Context) ([]*models.Application, error) {
	out := make([]*models.Application, 0, len(r.apps))
	for _, a := range r.apps {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeApplicationRepo) Update(_ context.Context, app *models.Application) error {
	for i, a := range r.apps {
		if a.StaffNumber == app.StaffNumber {
			updated := *app
			updated.Email = a.Email
			updated.CreatedAt = a.CreatedAt
			r.apps[i] = &updated
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeFormStatusRepo struct {
	status *models.FormStatus
}

func (r *fakeFormStatusRepo) Get(_ context.Context) (*models.FormStatus, error) {
	if r.status == nil {
		return nil, repositories.ErrNotFound
	}
	copied := *r.status
	return &copied, nil
}

func (r *fakeFormStatusRepo) Create(_ context.Context, status *models.FormStatus) error {
	if r.status != nil {
		return nil
	}
	r.status = &models.FormStatus{
		ID:        models.FormStatusID,
		IsOpen:    status.IsOpen,
		UpdatedAt: time.Now(),
		UpdatedBy: status.UpdatedBy,
	}
	return nil
}

func (r *fakeFormStatusRepo) Update(_ context.Context, isOpen bool, updatedBy *string) (*models.FormStatus, error) {
	if r.status == nil {
		return nil, repositories.ErrNotFound
	}
	r.status.IsOpen = isOpen
	r.status.UpdatedAt = time.Now()
	if updatedBy != nil {
		r.status.UpdatedBy = updatedBy
	}
	copied := *r.status
	return &copied, nil
}

// testEnv wires fakes through real services, controllers and routes.
type testEnv struct {
	router     *gin.Engine
	courses    *fakeCourseRepo
	apps       *fakeApplicationRepo
	formStatus *fakeFormStatusRepo
}

func newTestEnv() *testEnv {
	env := &testEnv{
		courses:    &fakeCourseRepo{},
		apps:       &fakeApplicationRepo{},
		formStatus: &fakeFormStatusRepo{},
	}

	courseService := services.NewCourseService(env.courses)
	applicationService := services.NewApplicationService(env.apps, env.courses)
	formStatusService := services.NewFormStatusService(env.formStatus)

	courseController := NewCourseController(courseService)
	applicationController := NewApplicationController(applicationService, formStatusService)
	formStatusController := NewFormStatusController(formStatusService)

	adminMw := middleware.NewAdminMiddleware(testAdminPassword, "")

	router := gin.New()
	registerRoutes(router, courseController, applicationController, formStatusController, adminMw)
	env.router = router
	return env
}

// registerRoutes mirrors the production route table without the swagger and
// CORS layers.
func registerRoutes(
	router *gin.Engine,
	courseController *CourseController,
	applicationController *ApplicationController,
	formStatusController *FormStatusController,
	adminMw *middleware.AdminMiddleware,
) {
	api := router.Group("/api")

	courses := api.Group("/courses")
	courses.GET("", courseController.ListCourses)
	courses.GET("/:id", courseController.GetCourseByID)
	courses.POST("", courseController.CreateCourse)

	applications := api.Group("/applications")
	applications.POST("", applicationController.SubmitApplication)
	applications.PUT("/:staffNumber", applicationController.UpdateApplication)
	applications.GET("/validate/:staffNumber", applicationController.ValidateStaffNumber)

	applicationsAdmin := applications.Group("")
	applicationsAdmin.Use(adminMw.RequireAdmin())
	applicationsAdmin.GET("", applicationController.ListApplications)
	applicationsAdmin.GET("/export", applicationController.ExportApplications)

	formStatus := api.Group("/form-status")
	formStatus.GET("", formStatusController.GetFormStatus)

	formStatusAdmin := formStatus.Group("")
	formStatusAdmin.Use(adminMw.RequireAdmin())
	formStatusAdmin.PUT("", formStatusController.UpdateFormStatus)
}

func (e *testEnv) seedCourse(name string, category models.CourseCategory) *models.Course {
	course := &models.Course{Name: name, Category: category, IsActive: true}
	_ = e.courses.Create(context.Background(), course)
	return course
}

func (e *testEnv) closeForm(t *testing.T) {
	t.Helper()
	resp := e.do(t, http.MethodPut, "/api/form-status",
		gin.H{"isOpen": false}, map[string]string{middleware.AdminHeader: testAdminPassword})
	require.Equal(t, http.StatusOK, resp.Code)
}

// do performs a request against the test router. A nil body sends no payload.
func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp := httptest.NewRecorder()
	e.router.ServeHTTP(resp, req)
	return resp
}

func decodeJSON(t *testing.T, resp *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeJSON(t, resp)
	errObj, ok := body["error"].(map[string]any)
	require.True(t, ok, "expected error object in response: %s", resp.Body.String())
	code, _ := errObj["code"].(string)
	return code
}

func validApplicationPayload(staffNumber string, courseID int64, category string) gin.H {
	return gin.H{
		"staffNumber":     staffNumber,
		"email":           staffNumber + "@example.com",
		"applicationDate": "2025-06-01",
		"firstName":       "Jane",
		"lastName":        "Wanjiru",
		"designation":     "Engineer",
		"division":        "ICT",
		"courseCategory":  category,
		"courseId":        courseID,
		"modeOfStudy":     "online",
	}
}
