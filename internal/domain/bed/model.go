package bed

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("bed not found")
	ErrNotAvailable = errors.New("bed is not available")
	ErrNotOccupied  = errors.New("bed is not occupied")
)

// Bed statuses. Invariant: StatusOccupied iff PatientID is set iff
// AssignedAt is set.
const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
)

// Bed is a hospital bed. PatientID references the occupying patient
// while the bed is occupied; nothing caps how many beds one patient may
// hold, and the referenced patient's active flag is not checked on
// assignment.
type Bed struct {
	ID         int        `json:"id"`
	BedNumber  string     `json:"bed_number"`
	BedType    string     `json:"bed_type"`
	Ward       string     `json:"ward"`
	Status     string     `json:"status"`
	PatientID  *int       `json:"patient_id"`
	AssignedAt *time.Time `json:"assigned_at"`
	CreatedAt  time.Time  `json:"created_at"`
}
