package controllers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Destoh2020/iesrform/internal/app/models/dto"
	"github.com/Destoh2020/iesrform/internal/app/services"
	"github.com/Destoh2020/iesrform/internal/middleware"
	"github.com/Destoh2020/iesrform/internal/pkg/apperrors"
)

// ApplicationController handles application submission, updates and admin
// listing/export.
type ApplicationController struct {
	applicationService *services.ApplicationService
	formStatusService  *services.FormStatusService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService, formStatusService *services.FormStatusService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
		formStatusService:  formStatusService,
	}
}

// requireOpenForm refuses writes while the intake form is closed. The check
// runs before any core validation so a closed form always wins.
func (c *ApplicationController) requireOpenForm(ctx *gin.Context) bool {
	status, err := c.formStatusService.GetFormStatus(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return false
	}
	if !status.IsOpen {
		middleware.HandleAPIError(ctx, apperrors.ErrFormClosed)
		return false
	}
	return true
}

// SubmitApplication handles new application submissions
// @Summary Submit a course application
// @Description Submits a new application. Staff number must be unique, the course must exist and be active, and the declared category must match the course.
// @Tags applications
// @Accept json
// @Produce json
// @Param request body dto.ApplicationRequest true "Application payload"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application submitted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or category mismatch"
// @Failure 403 {object} dto.ErrorResponse "Form is closed"
// @Failure 404 {object} dto.ErrorResponse "Course not found or inactive"
// @Failure 409 {object} dto.ErrorResponse "Application already exists for staff number"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) SubmitApplication(ctx *gin.Context) {
	if !c.requireOpenForm(ctx) {
		return
	}

	var req dto.ApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid application data")
		errorDetail = errorDetail.WithDetails(middleware.BindingErrorDetails(err))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	app, err := c.applicationService.SubmitApplication(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewApplicationResponse(app),
		Timestamp: time.Now(),
	})
}

// UpdateApplication handles updates to an existing application
// @Summary Update an existing application
// @Description Replaces the mutable fields of the application identified by staff number. The staff number itself and the creation timestamp never change.
// @Tags applications
// @Accept json
// @Produce json
// @Param staffNumber path string true "Staff number"
// @Param request body dto.ApplicationRequest true "Replacement payload"
// @Success 200 {object} dto.APIResponse{data=dto.ApplicationResponse} "Application updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload, staff number mismatch or category mismatch"
// @Failure 403 {object} dto.ErrorResponse "Form is closed"
// @Failure 404 {object} dto.ErrorResponse "Application or course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{staffNumber} [put]
func (c *ApplicationController) UpdateApplication(ctx *gin.Context) {
	if !c.requireOpenForm(ctx) {
		return
	}

	staffNumber := ctx.Param("staffNumber")

	var req dto.ApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid application data")
		errorDetail = errorDetail.WithDetails(middleware.BindingErrorDetails(err))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if req.StaffNumber != staffNumber {
		middleware.HandleAPIError(ctx, apperrors.ErrStaffNumberMismatch)
		return
	}

	app, err := c.applicationService.UpdateApplication(ctx, staffNumber, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewApplicationResponse(app),
		Timestamp: time.Now(),
	})
}

// ValidateStaffNumber reports whether a staff number has already applied
// @Summary Validate a staff number
// @Description Checks whether a staff number has already submitted an application. Absence is reported, not treated as an error.
// @Tags applications
// @Accept json
// @Produce json
// @Param staffNumber path string true "Staff number"
// @Success 200 {object} dto.APIResponse{data=dto.StaffValidationResponse} "Validation result"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/validate/{staffNumber} [get]
func (c *ApplicationController) ValidateStaffNumber(ctx *gin.Context) {
	staffNumber := ctx.Param("staffNumber")

	result := dto.StaffValidationResponse{StaffNumber: staffNumber}

	app, err := c.applicationService.GetApplicationByStaffNumber(ctx, staffNumber)
	switch {
	case err == nil:
		result.HasApplied = true
		resp := dto.NewApplicationResponse(app)
		result.Application = &resp
	case errors.Is(err, apperrors.ErrApplicationNotFound):
		// Not applied yet; nothing else to report.
	default:
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// ListApplications retrieves all applications (admin only)
// @Summary List all applications
// @Description Retrieves every submitted application regardless of form status
// @Tags applications
// @Accept json
// @Produce json
// @Param X-Admin-Password header string true "Admin password"
// @Success 200 {object} dto.APIResponse{data=[]dto.ApplicationResponse} "Applications retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Invalid admin password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	apps, err := c.applicationService.ListApplications(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewApplicationListResponse(apps),
		Timestamp: time.Now(),
	})
}

// ExportApplications streams all applications as a CSV file (admin only)
// @Summary Export applications as CSV
// @Description Downloads every submitted application as a CSV attachment
// @Tags applications
// @Produce text/csv
// @Param X-Admin-Password header string true "Admin password"
// @Success 200 {string} string "CSV file"
// @Failure 401 {object} dto.ErrorResponse "Invalid admin password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/export [get]
func (c *ApplicationController) ExportApplications(ctx *gin.Context) {
	apps, err := c.applicationService.ListApplications(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"Application ID", "Staff Number", "First Name", "Last Name",
		"Designation", "Division", "Course Name", "Course Category",
		"Mode of Study", "Application Date",
	}
	if err := writer.Write(header); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	for _, app := range apps {
		courseName := "Unknown"
		if app.Course != nil {
			courseName = app.Course.Name
		}
		record := []string{
			strconv.FormatInt(app.ID, 10),
			app.StaffNumber,
			app.FirstName,
			app.LastName,
			app.Designation,
			app.Division,
			courseName,
			string(app.CourseCategory),
			string(app.ModeOfStudy),
			app.ApplicationDate.Format(dto.DateFormat),
		}
		if err := writer.Write(record); err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename=applications.csv`)
	ctx.Data(http.StatusOK, "text/csv", buf.Bytes())
}
