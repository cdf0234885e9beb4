package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/finx/clinic/internal/domain/errs"
)

// Service coordinates validation and persistence for patients.
type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) Create(ctx context.Context, in Input) (*Patient, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p := New(in)
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]*Patient, int, error) {
	return s.patients.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (*Patient, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Apply(in)
	if err := s.patients.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	exists, err := s.patients.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrNotFound
	}
	return s.patients.Delete(ctx, id)
}

// Exists reports whether a patient identifier is known. Dependent services
// use it for referential checks before persisting their own records.
func (s *Service) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.patients.Exists(ctx, id)
}
