package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ListFilter narrows and pages the appointment listing. All filters are
// combined conjunctively; date bounds are inclusive.
type ListFilter struct {
	PatientID *uuid.UUID
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// Repository is the persistence boundary for appointments. Absent rows
// surface as errs.ErrNotFound. Listings are ordered ascending by
// appointment date.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	List(ctx context.Context, f ListFilter) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error)
	ByDateRange(ctx context.Context, start, end time.Time) ([]*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PatientDirectory answers referential checks against the patient registry.
type PatientDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
