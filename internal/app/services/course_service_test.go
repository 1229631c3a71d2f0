package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Destoh2020/iesrform/internal/app/models"
	"github.com/Destoh2020/iesrform/internal/pkg/apperrors"
)

func TestCreateCourse(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCourseRepo()
	svc := NewCourseService(repo)

	course := activeCourse("Project Management", models.CategoryShortProfessional)
	err := svc.CreateCourse(ctx, course)
	require.NoError(t, err)
	assert.Equal(t, int64(1), course.ID)
}

func TestCreateCourseValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewCourseService(newFakeCourseRepo())

	tests := []struct {
		name   string
		course *models.Course
	}{
		{"nil course", nil},
		{"empty name", &models.Course{Name: "   ", Category: models.CategoryAcademic}},
		{"unknown category", &models.Course{Name: "Something", Category: "evening"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateCourse(ctx, tt.course)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		})
	}
}

func TestGetCourseByID(t *testing.T) {
	ctx := context.Background()
	repo := newFakeCourseRepo(activeCourse("Project Management", models.CategoryShortProfessional))
	svc := NewCourseService(repo)

	course, err := svc.GetCourseByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Project Management", course.Name)

	_, err = svc.GetCourseByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.GetCourseByID(ctx, 0)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetCourseByIDInactive(t *testing.T) {
	ctx := context.Background()
	inactive := activeCourse("Retired Course", models.CategoryAcademic)
	inactive.IsActive = false
	svc := NewCourseService(newFakeCourseRepo(inactive))

	_, err := svc.GetCourseByID(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestListCourses(t *testing.T) {
	ctx := context.Background()
	inactive := activeCourse("Retired Course", models.CategoryAcademic)
	inactive.IsActive = false

	repo := newFakeCourseRepo(
		activeCourse("Project Management", models.CategoryShortProfessional),
		activeCourse("Finance for Non-Finance Managers", models.CategoryShortProfessional),
		activeCourse("MSc Energy Management", models.CategoryAcademic),
		inactive,
	)
	svc := NewCourseService(repo)

	all, err := svc.ListCourses(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	cat := models.CategoryShortProfessional
	filtered, err := svc.ListCourses(ctx, &cat)
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	for _, c := range filtered {
		assert.Equal(t, models.CategoryShortProfessional, c.Category)
	}

	bad := models.CourseCategory("evening")
	_, err = svc.ListCourses(ctx, &bad)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
