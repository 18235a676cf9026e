package patient

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("patient not found")

// Patient is a hospital patient record. Patients are never hard-deleted;
// IsActive=false marks a soft-deleted record that stays in storage.
type Patient struct {
	ID             int       `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Age            int       `json:"age"`
	Gender         string    `json:"gender"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	MedicalHistory string    `json:"medical_history"`
	Allergies      string    `json:"allergies"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// Patch lists the mutable fields of a Patient. A nil field is left
// untouched. ID and CreatedAt are not patchable.
type Patch struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Age            *int    `json:"age"`
	Gender         *string `json:"gender"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	MedicalHistory *string `json:"medical_history"`
	Allergies      *string `json:"allergies"`
	IsActive       *bool   `json:"is_active"`
}

// Apply overwrites the set fields of p onto pt.
func (p Patch) Apply(pt *Patient) {
	if p.FirstName != nil {
		pt.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		pt.LastName = *p.LastName
	}
	if p.Age != nil {
		pt.Age = *p.Age
	}
	if p.Gender != nil {
		pt.Gender = *p.Gender
	}
	if p.Phone != nil {
		pt.Phone = *p.Phone
	}
	if p.Email != nil {
		pt.Email = *p.Email
	}
	if p.MedicalHistory != nil {
		pt.MedicalHistory = *p.MedicalHistory
	}
	if p.Allergies != nil {
		pt.Allergies = *p.Allergies
	}
	if p.IsActive != nil {
		pt.IsActive = *p.IsActive
	}
}
