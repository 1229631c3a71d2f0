package models

import "time"

// Application represents a single staff member's course application.
// StaffNumber is the natural key: at most one application exists per staff
// number, enforced by a unique constraint in the database.
type Application struct {
	ID              int64          `json:"id" db:"id"`
	StaffNumber     string         `json:"staffNumber" db:"staff_number"`
	Email           *string        `json:"email,omitempty" db:"email"` // Nullable
	ApplicationDate time.Time      `json:"applicationDate" db:"application_date"`
	FirstName       string         `json:"firstName" db:"first_name"`
	LastName        string         `json:"lastName" db:"last_name"`
	Designation     string         `json:"designation" db:"designation"`
	Division        string         `json:"division" db:"division"`
	CourseCategory  CourseCategory `json:"courseCategory" db:"course_category"`
	CourseID        int64          `json:"courseId" db:"course_id"`
	ModeOfStudy     ModeOfStudy    `json:"modeOfStudy" db:"mode_of_study"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}
