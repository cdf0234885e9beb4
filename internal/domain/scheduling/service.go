package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finx/clinic/internal/domain/errs"
)

// Service coordinates validation, referential checks and persistence for
// appointments.
type Service struct {
	appointments Repository
	patients     PatientDirectory
}

func NewService(appointments Repository, patients PatientDirectory) *Service {
	return &Service{appointments: appointments, patients: patients}
}

func (s *Service) requirePatient(ctx context.Context, id uuid.UUID) error {
	exists, err := s.patients.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrPatientNotFound
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Appointment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.requirePatient(ctx, in.PatientID); err != nil {
		return nil, err
	}
	a := New(in)
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]*Appointment, error) {
	return s.appointments.List(ctx, f)
}

// ByPatient returns every appointment for the patient in chronological
// order. The patient must exist.
func (s *Service) ByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	if err := s.requirePatient(ctx, patientID); err != nil {
		return nil, err
	}
	return s.appointments.ListByPatient(ctx, patientID)
}

// ByDateRange returns every appointment between start and end inclusive.
// An inverted range is an error, never silently swapped.
func (s *Service) ByDateRange(ctx context.Context, start, end time.Time) ([]*Appointment, error) {
	if start.After(end) {
		return nil, errs.ErrInvalidRange
	}
	return s.appointments.ByDateRange(ctx, start, end)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*Appointment, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Apply(in)
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.appointments.GetByID(ctx, id); err != nil {
		return err
	}
	return s.appointments.Delete(ctx, id)
}
