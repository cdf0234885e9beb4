package patient

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter narrows and pages the patient listing. Search is matched
// case-insensitively as a substring of first name, last name, email or
// phone.
type ListFilter struct {
	Search string
	Limit  int
	Offset int
}

// Repository is the persistence boundary for patients. Absent rows surface
// as errs.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	List(ctx context.Context, f ListFilter) ([]*Patient, int, error)
	Update(ctx context.Context, p *Patient) error
	// Delete removes the patient and its dependent records atomically.
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
