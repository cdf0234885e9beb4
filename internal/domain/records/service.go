package records

import (
	"context"

	"github.com/google/uuid"

	"github.com/finx/clinic/internal/domain/errs"
)

// Service coordinates validation, referential checks and persistence for
// medical history records and external exams.
type Service struct {
	history  HistoryRepository
	exams    ExamRepository
	patients PatientDirectory
}

func NewService(history HistoryRepository, exams ExamRepository, patients PatientDirectory) *Service {
	return &Service{history: history, exams: exams, patients: patients}
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

// -- Medical History --

func (s *Service) CreateHistory(ctx context.Context, in HistoryInput) (*MedicalHistory, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.requirePatient(ctx, in.PatientID); err != nil {
		return nil, err
	}
	m := NewHistory(in)
	if err := s.history.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetHistory(ctx context.Context, id uuid.UUID) (*MedicalHistory, error) {
	return s.history.GetByID(ctx, id)
}

func (s *Service) ListHistoryByPatient(ctx context.Context, patientID uuid.UUID) ([]*MedicalHistory, error) {
	if err := s.requirePatient(ctx, patientID); err != nil {
		return nil, err
	}
	return s.history.ListByPatient(ctx, patientID)
}

func (s *Service) UpdateHistory(ctx context.Context, id uuid.UUID, in HistoryInput) (*MedicalHistory, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	m, err := s.history.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Apply(in)
	if err := s.history.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) DeleteHistory(ctx context.Context, id uuid.UUID) error {
	if _, err := s.history.GetByID(ctx, id); err != nil {
		return err
	}
	return s.history.Delete(ctx, id)
}

// -- External Exams --

func (s *Service) CreateExam(ctx context.Context, in ExamInput) (*ExternalExam, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := s.requirePatient(ctx, in.PatientID); err != nil {
		return nil, err
	}
	e := NewExam(in)
	if err := s.exams.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) GetExam(ctx context.Context, id uuid.UUID) (*ExternalExam, error) {
	return s.exams.GetByID(ctx, id)
}

func (s *Service) ListExamsByPatient(ctx context.Context, patientID uuid.UUID) ([]*ExternalExam, error) {
	if err := s.requirePatient(ctx, patientID); err != nil {
		return nil, err
	}
	return s.exams.ListByPatient(ctx, patientID)
}

func (s *Service) UpdateExam(ctx context.Context, id uuid.UUID, in ExamInput) (*ExternalExam, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	e, err := s.exams.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Apply(in)
	if err := s.exams.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) DeleteExam(ctx context.Context, id uuid.UUID) error {
	if _, err := s.exams.GetByID(ctx, id); err != nil {
		return err
	}
	return s.exams.Delete(ctx, id)
}
