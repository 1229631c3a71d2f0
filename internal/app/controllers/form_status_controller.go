package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Destoh2020/iesrform/internal/app/models/dto"
	"github.com/Destoh2020/iesrform/internal/app/services"
	"github.com/Destoh2020/iesrform/internal/middleware"
)

// FormStatusController handles the intake form open/closed state endpoints
type FormStatusController struct {
	formStatusService *services.FormStatusService
}

// NewFormStatusController creates a new FormStatusController
func NewFormStatusController(formStatusService *services.FormStatusService) *FormStatusController {
	return &FormStatusController{
		formStatusService: formStatusService,
	}
}

// GetFormStatus retrieves the current form status
// @Summary Get form status
// @Description Returns whether the form is accepting applications. The status row is created open on first access.
// @Tags form-status
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.FormStatusResponse} "Form status retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /form-status [get]
func (c *FormStatusController) GetFormStatus(ctx *gin.Context) {
	status, err := c.formStatusService.GetFormStatus(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewFormStatusResponse(status),
		Timestamp: time.Now(),
	})
}

// UpdateFormStatus opens or closes the form (admin only)
// @Summary Update form status
// @Description Opens or closes the intake form
// @Tags form-status
// @Accept json
// @Produce json
// @Param X-Admin-Password header string true "Admin password"
// @Param request body dto.UpdateFormStatusRequest true "Desired form status"
// @Success 200 {object} dto.APIResponse{data=dto.FormStatusResponse} "Form status updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid admin password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /form-status [put]
func (c *FormStatusController) UpdateFormStatus(ctx *gin.Context) {
	var req dto.UpdateFormStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid form status data")
		errorDetail = errorDetail.WithDetails(middleware.BindingErrorDetails(err))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	status, err := c.formStatusService.SetFormStatus(ctx, *req.IsOpen, req.UpdatedBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewFormStatusResponse(status),
		Timestamp: time.Now(),
	})
}
