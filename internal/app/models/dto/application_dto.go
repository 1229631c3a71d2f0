package dto

import (
	"time"

	"github.com/Destoh2020/iesrform/internal/app/models"
)

// DateFormat is the wire format for application dates.
const DateFormat = "2006-01-02"

// ApplicationRequest represents application submission data. The same payload
// is used for updates, where the staff number must match the path parameter.
type ApplicationRequest struct {
	StaffNumber     string  `json:"staffNumber" binding:"required,max=50"`
	Email           *string `json:"email" binding:"omitempty,email"`
	ApplicationDate string  `json:"applicationDate" binding:"required,datetime=2006-01-02"`
	FirstName       string  `json:"firstName" binding:"required,max=100"`
	LastName        string  `json:"lastName" binding:"required,max=100"`
	Designation     string  `json:"designation" binding:"required,max=255"`
	Division        string  `json:"division" binding:"required,max=255"`
	CourseCategory  string  `json:"courseCategory" binding:"required,oneof=short_professional academic"`
	CourseID        int64   `json:"courseId" binding:"required,gt=0"`
	ModeOfStudy     string  `json:"modeOfStudy" binding:"required,oneof=online blended physical"`
}

// ToModel converts the validated request into an application model.
func (r ApplicationRequest) ToModel() *models.Application {
	// Date format is guaranteed by the datetime binding tag.
	date, _ := time.Parse(DateFormat, r.ApplicationDate)
	return &models.Application{
		StaffNumber:     r.StaffNumber,
		Email:           r.Email,
		ApplicationDate: date,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Designation:     r.Designation,
		Division:        r.Division,
		CourseCategory:  models.CourseCategory(r.CourseCategory),
		CourseID:        r.CourseID,
		ModeOfStudy:     models.ModeOfStudy(r.ModeOfStudy),
	}
}

// ApplicationResponse represents application information returned to clients
type ApplicationResponse struct {
	ID              int64           `json:"id"`
	StaffNumber     string          `json:"staffNumber"`
	Email           *string         `json:"email,omitempty"`
	ApplicationDate string          `json:"applicationDate" example:"2025-06-01"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Designation     string          `json:"designation"`
	Division        string          `json:"division"`
	CourseCategory  string          `json:"courseCategory" enums:"short_professional,academic"`
	CourseID        int64           `json:"courseId"`
	ModeOfStudy     string          `json:"modeOfStudy" enums:"online,blended,physical"`
	Course          *CourseResponse `json:"course,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// StaffValidationResponse reports whether a staff number has already applied
type StaffValidationResponse struct {
	StaffNumber string               `json:"staffNumber"`
	HasApplied  bool                 `json:"hasApplied"`
	Application *ApplicationResponse `json:"application,omitempty"`
}

// NewApplicationResponse maps an application model to its response representation
func NewApplicationResponse(app *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:              app.ID,
		StaffNumber:     app.StaffNumber,
		Email:           app.Email,
		ApplicationDate: app.ApplicationDate.Format(DateFormat),
		FirstName:       app.FirstName,
		LastName:        app.LastName,
		Designation:     app.Designation,
		Division:        app.Division,
		CourseCategory:  string(app.CourseCategory),
		CourseID:        app.CourseID,
		ModeOfStudy:     string(app.ModeOfStudy),
		CreatedAt:       app.CreatedAt,
	}
	if app.Course != nil {
		course := NewCourseResponse(app.Course)
		resp.Course = &course
	}
	return resp
}

// NewApplicationListResponse maps a list of application models
func NewApplicationListResponse(apps []*models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, NewApplicationResponse(app))
	}
	return out
}
