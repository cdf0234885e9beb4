package records

import (
	"time"

	"github.com/google/uuid"

	"github.com/finx/clinic/internal/validation"
)

// Validate checks every field rule and returns the full set of failures.
func (in HistoryInput) Validate() error {
	v := validation.New()

	v.Check("patient_id", in.PatientID != uuid.Nil, "is required")

	v.Require("diagnosis", in.Diagnosis)
	v.MaxLen("diagnosis", in.Diagnosis, 500)

	v.Require("exams", in.Exams)
	v.MaxLen("exams", in.Exams, 1000)

	v.Require("prescriptions", in.Prescriptions)
	v.MaxLen("prescriptions", in.Prescriptions, 1000)

	return v.Err()
}

// Validate checks every field rule and returns the full set of failures.
func (in ExamInput) Validate() error {
	v := validation.New()

	v.Check("patient_id", in.PatientID != uuid.Nil, "is required")

	v.Require("name", in.Name)
	v.MaxLen("name", in.Name, 100)

	switch {
	case in.ExamDate.IsZero():
		v.Add("exam_date", "is required")
	case in.ExamDate.After(time.Now()):
		v.Add("exam_date", "must not be in the future")
	}

	v.Require("laboratory", in.Laboratory)
	v.MaxLen("laboratory", in.Laboratory, 100)

	v.Require("result", in.Result)
	v.MaxLen("result", in.Result, 1000)

	return v.Err()
}
