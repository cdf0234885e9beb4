package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses. New appointments always start as Scheduled; any
// update may move to any other allowed status.
const (
	StatusScheduled = "Scheduled"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
	StatusNoShow    = "No-Show"
)

var validStatuses = map[string]bool{
	StatusScheduled: true,
	StatusConfirmed: true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusNoShow:    true,
}

// Appointment maps to the appointments table.
type Appointment struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	PatientID       uuid.UUID  `db:"patient_id" json:"patient_id"`
	AppointmentDate time.Time  `db:"appointment_date" json:"appointment_date"`
	DurationMinutes int        `db:"duration_minutes" json:"duration_minutes"`
	Status          string     `db:"status" json:"status"`
	Type            string     `db:"type" json:"type"`
	Notes           string     `db:"notes" json:"notes"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// CreateInput carries the caller-supplied fields for booking an
// appointment. Status is not accepted on creation.
type CreateInput struct {
	PatientID       uuid.UUID `json:"patient_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	DurationMinutes int       `json:"duration_minutes"`
	Type            string    `json:"type"`
	Notes           string    `json:"notes"`
}

// UpdateInput carries the caller-supplied fields for rescheduling or
// progressing an appointment.
type UpdateInput struct {
	AppointmentDate time.Time `json:"appointment_date"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Type            string    `json:"type"`
	Notes           string    `json:"notes"`
}

// New constructs an appointment from validated input with the initial
// Scheduled status.
func New(in CreateInput) *Appointment {
	return &Appointment{
		ID:              uuid.New(),
		PatientID:       in.PatientID,
		AppointmentDate: in.AppointmentDate,
		DurationMinutes: in.DurationMinutes,
		Status:          StatusScheduled,
		Type:            in.Type,
		Notes:           in.Notes,
		CreatedAt:       time.Now().UTC(),
	}
}

// Apply overwrites the mutable fields and stamps the update time. The
// identifier, patient reference and creation timestamp never change.
func (a *Appointment) Apply(in UpdateInput) {
	a.AppointmentDate = in.AppointmentDate
	a.DurationMinutes = in.DurationMinutes
	a.Status = in.Status
	a.Type = in.Type
	a.Notes = in.Notes
	now := time.Now().UTC()
	a.UpdatedAt = &now
}
