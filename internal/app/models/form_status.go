package models

import "time"

// FormStatusID is the fixed primary key of the singleton form status row.
const FormStatusID int64 = 1

// FormStatus is the single row that records whether the intake form is
// currently accepting applications. It is lazily created with IsOpen=true on
// first access.
type FormStatus struct {
	ID        int64     `json:"id" db:"id"`
	IsOpen    bool      `json:"isOpen" db:"is_open"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	UpdatedBy *string   `json:"updatedBy,omitempty" db:"updated_by"` // Nullable
}
