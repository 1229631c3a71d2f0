package models

import "time"

// Course represents a training course staff can apply for.
type Course struct {
	ID          int64          `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Category    CourseCategory `json:"category" db:"category"`
	Description *string        `json:"description,omitempty" db:"description"` // Nullable
	IsActive    bool           `json:"isActive" db:"is_active"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
}
