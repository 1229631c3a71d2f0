package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Destoh2020/iesrform/internal/app/models"
	"github.com/Destoh2020/iesrform/internal/app/repositories"
)

// FormStatusRepository is the storage surface the form status service relies
// on. It is satisfied by *repositories.FormStatusRepository.
type FormStatusRepository interface {
	Get(ctx context.Context) (*models.FormStatus, error)
	Create(ctx context.Context, status *models.FormStatus) error
	Update(ctx context.Context, isOpen bool, updatedBy *string) (*models.FormStatus, error)
}

// FormStatusService handles the intake form open/closed state
type FormStatusService struct {
	formStatusRepo FormStatusRepository
}

// NewFormStatusService creates a new form status service instance
func NewFormStatusService(formStatusRepo FormStatusRepository) *FormStatusService {
	return &FormStatusService{
		formStatusRepo: formStatusRepo,
	}
}

// GetFormStatus returns the singleton form status row, creating it with
// is_open=true on first access. The create is idempotent, so concurrent
// first reads converge on the same row.
func (s *FormStatusService) GetFormStatus(ctx context.Context) (*models.FormStatus, error) {
	status, err := s.formStatusRepo.Get(ctx)
	if err == nil {
		return status, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("error retrieving form status: %w", err)
	}

	if err := s.formStatusRepo.Create(ctx, &models.FormStatus{IsOpen: true}); err != nil {
		return nil, fmt.Errorf("error initializing form status: %w", err)
	}

	status, err = s.formStatusRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving form status after init: %w", err)
	}
	return status, nil
}

// SetFormStatus opens or closes the intake form. When updatedBy is nil the
// previously recorded updater identity is kept.
func (s *FormStatusService) SetFormStatus(ctx context.Context, isOpen bool, updatedBy *string) (*models.FormStatus, error) {
	// Lazily create the row so a toggle on a fresh database behaves the same
	// as one on a seeded database.
	if _, err := s.GetFormStatus(ctx); err != nil {
		return nil, err
	}

	status, err := s.formStatusRepo.Update(ctx, isOpen, updatedBy)
	if err != nil {
		return nil, fmt.Errorf("error updating form status: %w", err)
	}
	return status, nil
}
