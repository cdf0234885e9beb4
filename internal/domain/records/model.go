package records

import (
	"time"

	"github.com/google/uuid"
)

// MedicalHistory maps to the medical_history_records table.
type MedicalHistory struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	PatientID     uuid.UUID  `db:"patient_id" json:"patient_id"`
	Diagnosis     string     `db:"diagnosis" json:"diagnosis"`
	Exams         string     `db:"exams" json:"exams"`
	Prescriptions string     `db:"prescriptions" json:"prescriptions"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// HistoryInput carries the caller-supplied fields for a history record.
type HistoryInput struct {
	PatientID     uuid.UUID `json:"patient_id"`
	Diagnosis     string    `json:"diagnosis"`
	Exams         string    `json:"exams"`
	Prescriptions string    `json:"prescriptions"`
}

// NewHistory constructs a history record from validated input.
func NewHistory(in HistoryInput) *MedicalHistory {
	return &MedicalHistory{
		ID:            uuid.New(),
		PatientID:     in.PatientID,
		Diagnosis:     in.Diagnosis,
		Exams:         in.Exams,
		Prescriptions: in.Prescriptions,
		CreatedAt:     time.Now().UTC(),
	}
}

// Apply overwrites the mutable fields and stamps the update time. The
// identifier, patient reference and creation timestamp never change.
func (m *MedicalHistory) Apply(in HistoryInput) {
	m.Diagnosis = in.Diagnosis
	m.Exams = in.Exams
	m.Prescriptions = in.Prescriptions
	now := time.Now().UTC()
	m.UpdatedAt = &now
}

// ExternalExam maps to the external_exams table.
type ExternalExam struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	PatientID  uuid.UUID  `db:"patient_id" json:"patient_id"`
	Name       string     `db:"name" json:"name"`
	ExamDate   time.Time  `db:"exam_date" json:"exam_date"`
	Laboratory string     `db:"laboratory" json:"laboratory"`
	Result     string     `db:"result" json:"result"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// ExamInput carries the caller-supplied fields for an external exam.
type ExamInput struct {
	PatientID  uuid.UUID `json:"patient_id"`
	Name       string    `json:"name"`
	ExamDate   time.Time `json:"exam_date"`
	Laboratory string    `json:"laboratory"`
	Result     string    `json:"result"`
}

// NewExam constructs an external exam from validated input.
func NewExam(in ExamInput) *ExternalExam {
	return &ExternalExam{
		ID:         uuid.New(),
		PatientID:  in.PatientID,
		Name:       in.Name,
		ExamDate:   in.ExamDate,
		Laboratory: in.Laboratory,
		Result:     in.Result,
		CreatedAt:  time.Now().UTC(),
	}
}

// Apply overwrites the mutable fields and stamps the update time.
func (e *ExternalExam) Apply(in ExamInput) {
	e.Name = in.Name
	e.ExamDate = in.ExamDate
	e.Laboratory = in.Laboratory
	e.Result = in.Result
	now := time.Now().UTC()
	e.UpdatedAt = &now
}
