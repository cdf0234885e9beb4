package patient

import (
	"time"

	"github.com/finx/clinic/internal/validation"
)

const maxAgeYears = 120

// Validate checks every field rule and returns the full set of failures.
func (in Input) Validate() error {
	v := validation.New()

	v.Require("first_name", in.FirstName)
	v.MinLen("first_name", in.FirstName, 2)
	v.MaxLen("first_name", in.FirstName, 100)

	v.Require("last_name", in.LastName)
	v.MinLen("last_name", in.LastName, 2)
	v.MaxLen("last_name", in.LastName, 100)

	v.Require("cpf", in.CPF)
	if in.CPF != "" {
		v.Check("cpf", ValidCPF(in.CPF), "must be a valid CPF number")
	}

	now := time.Now()
	switch {
	case in.DateOfBirth.IsZero():
		v.Add("date_of_birth", "is required")
	case !in.DateOfBirth.Before(now):
		v.Add("date_of_birth", "must be in the past")
	case in.DateOfBirth.Before(now.AddDate(-maxAgeYears, 0, 0)):
		v.Add("date_of_birth", "age must be at most 120 years")
	}

	v.Require("gender", in.Gender)
	v.MaxLen("gender", in.Gender, 20)

	v.Require("email", in.Email)
	v.Email("email", in.Email)
	v.MaxLen("email", in.Email, 100)

	v.Require("phone", in.Phone)
	v.Digits("phone", in.Phone)
	v.MaxLen("phone", in.Phone, 20)

	v.Require("address", in.Address)
	v.MaxLen("address", in.Address, 200)

	v.MaxLen("medical_history", in.MedicalHistory, 2000)

	return v.Err()
}
