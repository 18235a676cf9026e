package doctor

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("doctor not found")

// Doctor is a staff record. There is no deactivation operation;
// IsAvailable defaults true and nothing in the system clears it.
type Doctor struct {
	ID             int       `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Specialization string    `json:"specialization"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Shift          string    `json:"shift"`
	LicenseNumber  string    `json:"license_number"`
	IsAvailable    bool      `json:"is_available"`
	CreatedAt      time.Time `json:"created_at"`
}

// Patch lists the mutable fields of a Doctor; nil fields are left
// untouched. ID and CreatedAt are not patchable.
type Patch struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Specialization *string `json:"specialization"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email"`
	Shift          *string `json:"shift"`
	LicenseNumber  *string `json:"license_number"`
	IsAvailable    *bool   `json:"is_available"`
}

func (p Patch) Apply(d *Doctor) {
	if p.FirstName != nil {
		d.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		d.LastName = *p.LastName
	}
	if p.Specialization != nil {
		d.Specialization = *p.Specialization
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.Shift != nil {
		d.Shift = *p.Shift
	}
	if p.LicenseNumber != nil {
		d.LicenseNumber = *p.LicenseNumber
	}
	if p.IsAvailable != nil {
		d.IsAvailable = *p.IsAvailable
	}
}
