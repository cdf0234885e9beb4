package records

import (
	"context"

	"github.com/google/uuid"
)

// HistoryRepository is the persistence boundary for medical history
// records. Absent rows surface as errs.ErrNotFound.
type HistoryRepository interface {
	Create(ctx context.Context, m *MedicalHistory) error
	GetByID(ctx context.Context, id uuid.UUID) (*MedicalHistory, error)
	// ListByPatient returns every record for the patient, newest first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*MedicalHistory, error)
	Update(ctx context.Context, m *MedicalHistory) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExamRepository is the persistence boundary for external exams.
type ExamRepository interface {
	Create(ctx context.Context, e *ExternalExam) error
	GetByID(ctx context.Context, id uuid.UUID) (*ExternalExam, error)
	// ListByPatient returns every exam for the patient, most recent exam
	// date first.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*ExternalExam, error)
	Update(ctx context.Context, e *ExternalExam) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PatientDirectory answers referential checks against the patient registry.
type PatientDirectory interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
