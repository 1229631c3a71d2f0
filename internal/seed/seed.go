package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/Destoh2020/iesrform/internal/app/models"
	appRepos "github.com/Destoh2020/iesrform/internal/app/repositories"
)

// courseSeed describes one sample course.
type courseSeed struct {
	name        string
	category    appModels.CourseCategory
	description string
}

var shortProfessionalCourses = []courseSeed{
	{"Project Management Fundamentals", appModels.CategoryShortProfessional, "Introduction to project management principles and practices"},
	{"Leadership and Team Management", appModels.CategoryShortProfessional, "Developing leadership skills for effective team management"},
	{"Electrical Safety and Compliance", appModels.CategoryShortProfessional, "Safety protocols and compliance in electrical operations"},
	{"Customer Service Excellence", appModels.CategoryShortProfessional, "Enhancing customer service skills and satisfaction"},
	{"Digital Transformation in Utilities", appModels.CategoryShortProfessional, "Understanding digital technologies in the utility sector"},
	{"Financial Management for Non-Finance Managers", appModels.CategoryShortProfessional, "Basic financial concepts for operational managers"},
	{"Data Analytics and Reporting", appModels.CategoryShortProfessional, "Using data analytics for business decision making"},
}

var academicCourses = []courseSeed{
	{"Bachelor of Science in Electrical Engineering", appModels.CategoryAcademic, "Undergraduate degree in electrical engineering"},
	{"Master of Business Administration (MBA)", appModels.CategoryAcademic, "Graduate business administration program"},
	{"Bachelor of Commerce (Accounting)", appModels.CategoryAcademic, "Undergraduate degree in accounting and finance"},
	{"Master of Science in Energy Management", appModels.CategoryAcademic, "Graduate program in energy systems and management"},
	{"Bachelor of Science in Information Technology", appModels.CategoryAcademic, "Undergraduate degree in IT and computer systems"},
	{"Master of Engineering in Power Systems", appModels.CategoryAcademic, "Advanced engineering degree in power systems"},
	{"Bachelor of Science in Environmental Science", appModels.CategoryAcademic, "Undergraduate degree in environmental studies"},
	{"Diploma in Electrical Installation", appModels.CategoryAcademic, "Technical diploma in electrical installation and maintenance"},
}

// CreateDefaultData seeds sample courses and the form status row on a fresh
// database. Seeding is skipped when any course already exists so restarting
// the server never duplicates data.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)
	formStatusRepo := appRepos.NewFormStatusRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (courses, form status)...")

	count, err := courseRepo.CountAll(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		lgr.Info().Int64("courses", count).Msg("Courses already present, skipping seed")
	} else {
		seeds := append(append([]courseSeed{}, shortProfessionalCourses...), academicCourses...)
		for _, s := range seeds {
			description := s.description
			course := &appModels.Course{
				Name:        s.name,
				Category:    s.category,
				Description: &description,
				IsActive:    true,
			}
			if err := courseRepo.Create(ctx, course); err != nil {
				lgr.Error().Err(err).Str("course", s.name).Msg("Error seeding course")
				return err
			}
		}
		lgr.Info().
			Int("shortProfessional", len(shortProfessionalCourses)).
			Int("academic", len(academicCourses)).
			Msg("Seeded sample courses")
	}

	// Initialize the form status singleton as open. The insert is idempotent.
	updatedBy := "System"
	if err := formStatusRepo.Create(ctx, &appModels.FormStatus{IsOpen: true, UpdatedBy: &updatedBy}); err != nil {
		lgr.Error().Err(err).Msg("Error initializing form status")
		return err
	}

	return nil
}
