package services

import (
	"context"
	"time"

	"github.com/Destoh2020/iesrform/internal/app/models"
	"github.com/Destoh2020/iesrform/internal/app/repositories"
)

// In-memory repository fakes backing the service tests. They mirror the
// behavior of the real pgx-backed repositories, including the sentinel errors
// the services branch on.

type fakeCourseRepo struct {
	courses []*models.Course
	nextID  int64
}

func newFakeCourseRepo(courses ...*models.Course) *fakeCourseRepo {
	r := &fakeCourseRepo{nextID: 1}
	for _, c := range courses {
		_ = r.Create(context.Background(), c)
	}
	return r
}

func (r *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	course.ID = r.nextID
	r.nextID++
	course.CreatedAt = time.Now()
	r.courses = append(r.courses, course)
	return nil
}

func (r *fakeCourseRepo) GetActiveByID(_ context.Context, id int64) (*models.Course, error) {
	for _, c := range r.courses {
		if c.ID == id && c.IsActive {
			return c, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeCourseRepo) GetAllActive(_ context.Context, category *models.CourseCategory) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range r.courses {
		if !c.IsActive {
			continue
		}
		if category != nil && c.Category != *category {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

type fakeApplicationRepo struct {
	apps   []*models.Application
	nextID int64

	// createErr, when set, is returned by Create to simulate the database
	// unique constraint firing after the service pre-check passed.
	createErr error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{nextID: 1}
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *models.Application) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, a := range r.apps {
		if a.StaffNumber == app.StaffNumber {
			return repositories.ErrApplicationExists
		}
	}
	app.ID = r.nextID
	r.nextID++
	app.CreatedAt = time.Now()
	stored := *app
	r.apps = append(r.apps, &stored)
	return nil
}

func (r *fakeApplicationRepo) GetByStaffNumber(_ context.Context, staffNumber string) (*models.Application, error) {
	for _, a := range r.apps {
		if a.StaffNumber == staffNumber {
			copied := *a
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeApplicationRepo) GetAll(_ context.Context) ([]*models.Application, error) {
	out := make([]*models.Application, 0, len(r.apps))
	for _, a := range r.apps {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeApplicationRepo) Update(_ context.Context, app *models.Application) error {
	for i, a := range r.apps {
		if a.StaffNumber == app.StaffNumber {
			updated := *app
			// Immutable columns are never touched by the real UPDATE statement.
			updated.Email = a.Email
			updated.CreatedAt = a.CreatedAt
			r.apps[i] = &updated
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeFormStatusRepo struct {
	status  *models.FormStatus
	creates int
}

func (r *fakeFormStatusRepo) Get(_ context.Context) (*models.FormStatus, error) {
	if r.status == nil {
		return nil, repositories.ErrNotFound
	}
	copied := *r.status
	return &copied, nil
}

func (r *fakeFormStatusRepo) Create(_ context.Context, status *models.FormStatus) error {
	r.creates++
	if r.status != nil {
		// ON CONFLICT DO NOTHING
		return nil
	}
	r.status = &models.FormStatus{
		ID:        models.FormStatusID,
		IsOpen:    status.IsOpen,
		UpdatedAt: time.Now(),
		UpdatedBy: status.UpdatedBy,
	}
	return nil
}

func (r *fakeFormStatusRepo) Update(_ context.Context, isOpen bool, updatedBy *string) (*models.FormStatus, error) {
	if r.status == nil {
		return nil, repositories.ErrNotFound
	}
	r.status.IsOpen = isOpen
	r.status.UpdatedAt = time.Now()
	if updatedBy != nil {
		r.status.UpdatedBy = updatedBy
	}
	copied := *r.status
	return &copied, nil
}

func strPtr(s string) *string { return &s }

func activeCourse(name string, category models.CourseCategory) *models.Course {
	return &models.Course{Name: name, Category: category, IsActive: true}
}

func sampleApplication(staffNumber string, courseID int64, category models.CourseCategory) *models.Application {
	return &models.Application{
		StaffNumber:     staffNumber,
		Email:           strPtr(staffNumber + "@example.com"),
		ApplicationDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		FirstName:       "Jane",
		LastName:        "Wanjiru",
		Designation:     "Engineer",
		Division:        "ICT",
		CourseCategory:  category,
		CourseID:        courseID,
		ModeOfStudy:     models.ModeOnline,
	}
}
