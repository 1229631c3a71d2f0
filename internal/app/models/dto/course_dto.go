package dto

import (
	"time"

	"github.com/Destoh2020/iesrform/internal/app/models"
)

// CourseResponse represents course information returned to clients
type CourseResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category" enums:"short_professional,academic"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Category    string  `json:"category" binding:"required,oneof=short_professional academic"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	// IsActive defaults to true when omitted.
	IsActive *bool `json:"isActive"`
}

// NewCourseResponse maps a course model to its response representation
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:          course.ID,
		Name:        course.Name,
		Category:    string(course.Category),
		Description: course.Description,
		IsActive:    course.IsActive,
		CreatedAt:   course.CreatedAt,
	}
}

// NewCourseListResponse maps a list of course models
func NewCourseListResponse(courses []*models.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		out = append(out, NewCourseResponse(course))
	}
	return out
}
