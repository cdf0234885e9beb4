package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table.
type Patient struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	FirstName      string     `db:"first_name" json:"first_name"`
	LastName       string     `db:"last_name" json:"last_name"`
	CPF            string     `db:"cpf" json:"cpf"`
	DateOfBirth    time.Time  `db:"date_of_birth" json:"date_of_birth"`
	Gender         string     `db:"gender" json:"gender"`
	Email          string     `db:"email" json:"email"`
	Phone          string     `db:"phone" json:"phone"`
	Address        string     `db:"address" json:"address"`
	MedicalHistory string     `db:"medical_history" json:"medical_history"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// Input carries the caller-supplied fields for creating or updating a
// patient. Validate must pass before the input is applied.
type Input struct {
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	CPF            string    `json:"cpf"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	Gender         string    `json:"gender"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	MedicalHistory string    `json:"medical_history"`
}

// New constructs a patient from validated input, assigning its identifier
// and creation timestamp.
func New(in Input) *Patient {
	return &Patient{
		ID:             uuid.New(),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		CPF:            in.CPF,
		DateOfBirth:    in.DateOfBirth,
		Gender:         in.Gender,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		MedicalHistory: in.MedicalHistory,
		CreatedAt:      time.Now().UTC(),
	}
}

// Apply overwrites the mutable fields from validated input and stamps the
// update time. Identifier and creation timestamp are never touched.
func (p *Patient) Apply(in Input) {
	p.FirstName = in.FirstName
	p.LastName = in.LastName
	p.CPF = in.CPF
	p.DateOfBirth = in.DateOfBirth
	p.Gender = in.Gender
	p.Email = in.Email
	p.Phone = in.Phone
	p.Address = in.Address
	p.MedicalHistory = in.MedicalHistory
	now := time.Now().UTC()
	p.UpdatedAt = &now
}
