package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Destoh2020/iesrform/internal/app/models"
	"github.com/Destoh2020/iesrform/internal/pkg/logger"
)

// Form status error types
var (
	// ErrFormStatusNotFound is returned when the singleton row is absent.
	ErrFormStatusNotFound = ErrNotFound // Use shared ErrNotFound
)

// FormStatusRepository handles form status database operations
type FormStatusRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFormStatusRepository creates a new FormStatusRepository
func NewFormStatusRepository(db *pgxpool.Pool) *FormStatusRepository {
	return &FormStatusRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get retrieves the singleton form status row.
func (r *FormStatusRepository) Get(ctx context.Context) (*models.FormStatus, error) {
	sql, args, err := r.sb.Select("id", "is_open", "updated_at", "updated_by").
		From("form_status").
		Where(squirrel.Eq{"id": models.FormStatusID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get form status SQL")
		return nil, fmt.Errorf("failed to build get form status query: %w", err)
	}

	status := &models.FormStatus{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&status.ID,
		&status.IsOpen,
		&status.UpdatedAt,
		&status.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFormStatusNotFound
		}
		logger.Error().Err(err).Msg("Error scanning form status row")
		return nil, fmt.Errorf("error getting form status: %w", err)
	}

	return status, nil
}

// Create inserts the singleton row if it does not exist yet. Concurrent
// first reads may race here; ON CONFLICT DO NOTHING keeps the insert
// idempotent and the caller re-reads afterwards.
func (r *FormStatusRepository) Create(ctx context.Context, status *models.FormStatus) error {
	sql, args, err := r.sb.Insert("form_status").
		Columns("id", "is_open", "updated_by").
		Values(models.FormStatusID, status.IsOpen, status.UpdatedBy).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create form status SQL")
		return fmt.Errorf("failed to build create form status query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Msg("Error executing create form status query")
		return fmt.Errorf("error creating form status: %w", err)
	}

	return nil
}

// Update overwrites the open flag, refreshes the timestamp and, when an
// updater identity is given, records it. A nil updatedBy leaves the previous
// value in place.
func (r *FormStatusRepository) Update(ctx context.Context, isOpen bool, updatedBy *string) (*models.FormStatus, error) {
	sql, args, err := r.sb.Update("form_status").
		Set("is_open", isOpen).
		Set("updated_by", squirrel.Expr("COALESCE(?, updated_by)", updatedBy)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": models.FormStatusID}).
		Suffix("RETURNING id, is_open, updated_at, updated_by").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update form status SQL")
		return nil, fmt.Errorf("failed to build update form status query: %w", err)
	}

	status := &models.FormStatus{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&status.ID,
		&status.IsOpen,
		&status.UpdatedAt,
		&status.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFormStatusNotFound
		}
		logger.Error().Err(err).Msg("Error executing update form status query")
		return nil, fmt.Errorf("error updating form status: %w", err)
	}

	return status, nil
}
