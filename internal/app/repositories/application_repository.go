package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Destoh2020/iesrform/internal/app/models"
	"github.com/Destoh2020/iesrform/internal/pkg/dberrors"
	"github.com/Destoh2020/iesrform/internal/pkg/logger"
)

// staffNumberConstraint is the unique constraint backing the
// one-application-per-staff-number rule.
const staffNumberConstraint = "applications_staff_number_key"

// Application error types
var (
	// ErrApplicationNotFound is returned when an application is not found.
	ErrApplicationNotFound = ErrNotFound // Use shared ErrNotFound
	// ErrApplicationExists is returned when an application already exists for
	// the staff number. The unique constraint in the database is the
	// authoritative source of this error under concurrent submissions.
	ErrApplicationExists = errors.New("application already exists for this staff number")
)

// applicationColumns lists the application columns joined with their course.
var applicationColumns = []string{
	"a.id", "a.staff_number", "a.email", "a.application_date",
	"a.first_name", "a.last_name", "a.designation", "a.division",
	"a.course_category", "a.course_id", "a.mode_of_study", "a.created_at",
	"c.id", "c.name", "c.category", "c.description", "c.is_active", "c.created_at",
}

// ApplicationRepository handles application database operations
type ApplicationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// scanApplication scans a joined application+course row.
func scanApplication(row pgx.Row) (*models.Application, error) {
	app := &models.Application{Course: &models.Course{}}
	err := row.Scan(
		&app.ID,
		&app.StaffNumber,
		&app.Email,
		&app.ApplicationDate,
		&app.FirstName,
		&app.LastName,
		&app.Designation,
		&app.Division,
		&app.CourseCategory,
		&app.CourseID,
		&app.ModeOfStudy,
		&app.CreatedAt,
		&app.Course.ID,
		&app.Course.Name,
		&app.Course.Category,
		&app.Course.Description,
		&app.Course.IsActive,
		&app.Course.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// Create inserts a new application. A unique violation on the staff number
// constraint is translated to ErrApplicationExists.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	sql, args, err := r.sb.Insert("applications").
		Columns("staff_number", "email", "application_date", "first_name", "last_name",
			"designation", "division", "course_category", "course_id", "mode_of_study").
		Values(app.StaffNumber, app.Email, app.ApplicationDate, app.FirstName, app.LastName,
			app.Designation, app.Division, app.CourseCategory, app.CourseID, app.ModeOfStudy).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create application SQL")
		return fmt.Errorf("failed to build create application query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, staffNumberConstraint) {
			return ErrApplicationExists
		}
		logger.Error().Err(err).Str("staffNumber", app.StaffNumber).Msg("Error executing create application query")
		return fmt.Errorf("error creating application: %w", err)
	}

	return nil
}

// GetByStaffNumber retrieves the application for a staff number, with its
// course attached.
func (r *ApplicationRepository) GetByStaffNumber(ctx context.Context, staffNumber string) (*models.Application, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("applications a").
		Join("courses c ON c.id = a.course_id").
		Where(squirrel.Eq{"a.staff_number": staffNumber}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get application SQL")
		return nil, fmt.Errorf("failed to build get application query: %w", err)
	}

	app, err := scanApplication(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrApplicationNotFound
		}
		logger.Error().Err(err).Str("staffNumber", staffNumber).Msg("Error scanning application row")
		return nil, fmt.Errorf("error getting application by staff number: %w", err)
	}

	return app, nil
}

// GetAll retrieves every application with its course attached, in insertion
// order.
func (r *ApplicationRepository) GetAll(ctx context.Context) ([]*models.Application, error) {
	sql, args, err := r.sb.Select(applicationColumns...).
		From("applications a").
		Join("courses c ON c.id = a.course_id").
		OrderBy("a.id ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get all applications SQL")
		return nil, fmt.Errorf("failed to build get all applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all applications query")
		return nil, fmt.Errorf("error querying applications: %w", err)
	}
	defer rows.Close()

	apps := []*models.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning application row during get all")
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		apps = append(apps, app)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating application rows")
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}

	return apps, nil
}

// Update overwrites the mutable fields of the application identified by the
// staff number. The id, staff number, email and creation timestamp are left
// untouched.
func (r *ApplicationRepository) Update(ctx context.Context, app *models.Application) error {
	sql, args, err := r.sb.Update("applications").
		Set("application_date", app.ApplicationDate).
		Set("first_name", app.FirstName).
		Set("last_name", app.LastName).
		Set("designation", app.Designation).
		Set("division", app.Division).
		Set("course_category", app.CourseCategory).
		Set("course_id", app.CourseID).
		Set("mode_of_study", app.ModeOfStudy).
		Where(squirrel.Eq{"staff_number": app.StaffNumber}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update application SQL")
		return fmt.Errorf("failed to build update application query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("staffNumber", app.StaffNumber).Msg("Error executing update application query")
		return fmt.Errorf("error updating application: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrApplicationNotFound
	}

	return nil
}
