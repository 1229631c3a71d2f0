package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Shared repository errors
var (
	// ErrNotFound is the shared sentinel for missing rows.
	ErrNotFound = errors.New("record not found")
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository      *CourseRepository
	ApplicationRepository *ApplicationRepository
	FormStatusRepository  *FormStatusRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:      NewCourseRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
		FormStatusRepository:  NewFormStatusRepository(db),
	}
}
