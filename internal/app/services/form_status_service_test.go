package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Destoh2020/iesrform/internal/app/models"
)

func TestGetFormStatusLazyCreate(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFormStatusRepo{}
	svc := NewFormStatusService(repo)

	status, err := svc.GetFormStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FormStatusID, status.ID)
	assert.True(t, status.IsOpen)
	assert.Equal(t, 1, repo.creates)

	// Subsequent reads reuse the existing row.
	status, err = svc.GetFormStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.IsOpen)
	assert.Equal(t, 1, repo.creates)
}

func TestSetFormStatus(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFormStatusRepo{}
	svc := NewFormStatusService(repo)

	status, err := svc.SetFormStatus(ctx, false, strPtr("hr-admin"))
	require.NoError(t, err)
	assert.False(t, status.IsOpen)
	require.NotNil(t, status.UpdatedBy)
	assert.Equal(t, "hr-admin", *status.UpdatedBy)

	fetched, err := svc.GetFormStatus(ctx)
	require.NoError(t, err)
	assert.False(t, fetched.IsOpen)
}

func TestSetFormStatusKeepsUpdaterWhenOmitted(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFormStatusRepo{}
	svc := NewFormStatusService(repo)

	_, err := svc.SetFormStatus(ctx, false, strPtr("hr-admin"))
	require.NoError(t, err)

	status, err := svc.SetFormStatus(ctx, true, nil)
	require.NoError(t, err)
	assert.True(t, status.IsOpen)
	require.NotNil(t, status.UpdatedBy)
	assert.Equal(t, "hr-admin", *status.UpdatedBy)
}

func TestSetFormStatusCreatesRowFirst(t *testing.T) {
	ctx := context.Background()
	repo := &fakeFormStatusRepo{}
	svc := NewFormStatusService(repo)

	status, err := svc.SetFormStatus(ctx, false, nil)
	require.NoError(t, err)
	assert.False(t, status.IsOpen)
	assert.Equal(t, 1, repo.creates)
}
