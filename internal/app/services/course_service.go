package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Destoh2020/iesrform/internal/app/models"
	"github.com/Destoh2020/iesrform/internal/app/repositories"
	"github.com/Destoh2020/iesrform/internal/pkg/apperrors"
)

// CourseRepository is the storage surface the course service relies on. It is
// satisfied by *repositories.CourseRepository.
type CourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetActiveByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllActive(ctx context.Context, category *models.CourseCategory) ([]*models.Course, error)
}

// CourseService handles course-related operations
type CourseService struct {
	courseRepo CourseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo CourseRepository) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
	}
}

// validateCourse validates course data before database operations
func (s *CourseService) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(course.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if !course.Category.IsValid() {
		return fmt.Errorf("%w: unknown course category %q", apperrors.ErrValidationFailed, course.Category)
	}

	return nil
}

// CreateCourse creates a new course. No uniqueness or cross-reference checks
// apply to courses.
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetCourseByID retrieves an active course by ID. Inactive or missing courses
// both surface as not found.
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// ListCourses retrieves all active courses, optionally filtered by category.
func (s *CourseService) ListCourses(ctx context.Context, category *models.CourseCategory) ([]*models.Course, error) {
	if category != nil && !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown course category %q", apperrors.ErrValidationFailed, *category)
	}

	courses, err := s.courseRepo.GetAllActive(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	return courses, nil
}
