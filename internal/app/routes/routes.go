package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Destoh2020/iesrform/internal/app/controllers"
	"github.com/Destoh2020/iesrform/internal/app/models/dto"
	"github.com/Destoh2020/iesrform/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	applicationController *controllers.ApplicationController,
	formStatusController *controllers.FormStatusController,
	adminMiddleware *middleware.AdminMiddleware,
) {
	api := router.Group("/api")

	// --- Course routes ---
	courses := api.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		// Course creation carries no admin gate in the current design.
		courses.POST("", courseController.CreateCourse)
	}

	// --- Application routes ---
	applications := api.Group("/applications")
	{
		applications.POST("", applicationController.SubmitApplication)
		applications.PUT("/:staffNumber", applicationController.UpdateApplication)
		applications.GET("/validate/:staffNumber", applicationController.ValidateStaffNumber)

		// Admin-only routes, gated by the shared secret header.
		applicationsAdmin := applications.Group("")
		applicationsAdmin.Use(adminMiddleware.RequireAdmin())
		{
			applicationsAdmin.GET("", applicationController.ListApplications)
			applicationsAdmin.GET("/export", applicationController.ExportApplications)
		}
	}

	// --- Form status routes ---
	formStatus := api.Group("/form-status")
	{
		formStatus.GET("", formStatusController.GetFormStatus)

		formStatusAdmin := formStatus.Group("")
		formStatusAdmin.Use(adminMiddleware.RequireAdmin())
		{
			formStatusAdmin.PUT("", formStatusController.UpdateFormStatus)
		}
	}

	// Root service info endpoint (public)
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.ServiceInfo{
			Message: "IESR Staff Application Form API",
			Version: "1.0.0",
			Docs:    "/swagger/index.html",
		})
	})

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
}
