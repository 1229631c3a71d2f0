package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Destoh2020/iesrform/internal/app/models"
	"github.com/Destoh2020/iesrform/internal/app/repositories"
	"github.com/Destoh2020/iesrform/internal/pkg/apperrors"
)

// ApplicationRepository is the storage surface the application service relies
// on. It is satisfied by *repositories.ApplicationRepository.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	GetByStaffNumber(ctx context.Context, staffNumber string) (*models.Application, error)
	GetAll(ctx context.Context) ([]*models.Application, error)
	Update(ctx context.Context, app *models.Application) error
}

// ApplicationService handles application submission and updates
type ApplicationService struct {
	applicationRepo ApplicationRepository
	courseRepo      CourseRepository
}

// NewApplicationService creates a new application service instance
func NewApplicationService(applicationRepo ApplicationRepository, courseRepo CourseRepository) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		courseRepo:      courseRepo,
	}
}

// resolveCourse checks that the referenced course exists, is active, and that
// the declared category matches the course's actual category.
func (s *ApplicationService) resolveCourse(ctx context.Context, courseID int64, category models.CourseCategory) (*models.Course, error) {
	course, err := s.courseRepo.GetActiveByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error checking course: %w", err)
	}

	// Category check runs only after the course is known to exist.
	if course.Category != category {
		return nil, apperrors.ErrCategoryMismatch
	}

	return course, nil
}

// SubmitApplication validates and persists a new application. Checks run in
// order and short-circuit: duplicate staff number, course existence/activity,
// category match, then the insert itself. The pre-check on the staff number is
// a fast path; the unique constraint in the database settles races between
// concurrent submissions, and both paths report the same conflict.
func (s *ApplicationService) SubmitApplication(ctx context.Context, app *models.Application) (*models.Application, error) {
	_, err := s.applicationRepo.GetByStaffNumber(ctx, app.StaffNumber)
	if err == nil {
		return nil, apperrors.ErrApplicationExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("error checking existing application: %w", err)
	}

	course, err := s.resolveCourse(ctx, app.CourseID, app.CourseCategory)
	if err != nil {
		return nil, err
	}

	if err := s.applicationRepo.Create(ctx, app); err != nil {
		if errors.Is(err, repositories.ErrApplicationExists) {
			return nil, apperrors.ErrApplicationExists
		}
		return nil, fmt.Errorf("error creating application: %w", err)
	}

	app.Course = course
	return app, nil
}

// UpdateApplication replaces the mutable fields of an existing application.
// The staff number and creation timestamp are immutable; the application date
// is overwritten with the caller-supplied value.
func (s *ApplicationService) UpdateApplication(ctx context.Context, staffNumber string, app *models.Application) (*models.Application, error) {
	existing, err := s.applicationRepo.GetByStaffNumber(ctx, staffNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}

	course, err := s.resolveCourse(ctx, app.CourseID, app.CourseCategory)
	if err != nil {
		return nil, err
	}

	existing.ApplicationDate = app.ApplicationDate
	existing.FirstName = app.FirstName
	existing.LastName = app.LastName
	existing.Designation = app.Designation
	existing.Division = app.Division
	existing.CourseCategory = app.CourseCategory
	existing.CourseID = app.CourseID
	existing.ModeOfStudy = app.ModeOfStudy

	if err := s.applicationRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error updating application: %w", err)
	}

	existing.Course = course
	return existing, nil
}

// GetApplicationByStaffNumber retrieves the application for a staff number.
func (s *ApplicationService) GetApplicationByStaffNumber(ctx context.Context, staffNumber string) (*models.Application, error) {
	app, err := s.applicationRepo.GetByStaffNumber(ctx, staffNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	return app, nil
}

// ListApplications retrieves every application regardless of form status.
func (s *ApplicationService) ListApplications(ctx context.Context) ([]*models.Application, error) {
	apps, err := s.applicationRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	return apps, nil
}
