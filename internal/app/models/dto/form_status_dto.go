package dto

import (
	"time"

	"github.com/Destoh2020/iesrform/internal/app/models"
)

// FormStatusResponse represents the intake form status
type FormStatusResponse struct {
	ID        int64     `json:"id"`
	IsOpen    bool      `json:"isOpen"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy *string   `json:"updatedBy,omitempty"`
}

// UpdateFormStatusRequest represents a request to open or close the form.
// IsOpen is a pointer so that an explicit false is distinguishable from a
// missing field.
type UpdateFormStatusRequest struct {
	IsOpen    *bool   `json:"isOpen" binding:"required"`
	UpdatedBy *string `json:"updatedBy" binding:"omitempty,max=100"`
}

// NewFormStatusResponse maps a form status model to its response representation
func NewFormStatusResponse(status *models.FormStatus) FormStatusResponse {
	return FormStatusResponse{
		ID:        status.ID,
		IsOpen:    status.IsOpen,
		UpdatedAt: status.UpdatedAt,
		UpdatedBy: status.UpdatedBy,
	}
}
