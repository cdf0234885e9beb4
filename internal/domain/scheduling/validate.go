package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/finx/clinic/internal/validation"
)

const (
	minDurationMinutes = 1
	maxDurationMinutes = 480
)

// Validate checks every booking rule and returns the full set of failures.
// The appointment date must be strictly in the future at booking time.
func (in CreateInput) Validate() error {
	v := validation.New()

	v.Check("patient_id", in.PatientID != uuid.Nil, "is required")

	switch {
	case in.AppointmentDate.IsZero():
		v.Add("appointment_date", "is required")
	case !in.AppointmentDate.After(time.Now()):
		v.Add("appointment_date", "must be in the future")
	}

	validateCommon(v, in.DurationMinutes, in.Type, in.Notes)

	return v.Err()
}

// Validate checks every update rule. Past dates are allowed so completed
// visits can be corrected after the fact.
func (in UpdateInput) Validate() error {
	v := validation.New()

	v.Check("appointment_date", !in.AppointmentDate.IsZero(), "is required")

	v.Require("status", in.Status)
	v.MaxLen("status", in.Status, 50)
	if in.Status != "" {
		v.Check("status", validStatuses[in.Status],
			"must be one of: Scheduled, Confirmed, Completed, Cancelled, No-Show")
	}

	validateCommon(v, in.DurationMinutes, in.Type, in.Notes)

	return v.Err()
}

func validateCommon(v *validation.Validator, duration int, typ, notes string) {
	v.Check("duration_minutes", duration >= minDurationMinutes && duration <= maxDurationMinutes,
		"must be between 1 and 480 minutes")

	v.Require("type", typ)
	v.MaxLen("type", typ, 100)

	v.MaxLen("notes", notes, 1000)
}
