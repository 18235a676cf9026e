package bed

import "context"

type Repository interface {
	// Create allocates the ID, forces StatusAvailable with no patient
	// reference, stamps CreatedAt, inserts, and persists.
	Create(ctx context.Context, b *Bed) error
	GetByID(ctx context.Context, id int) (*Bed, error)
	List(ctx context.Context) ([]*Bed, error)
	// Assign transitions an available bed to occupied. Fails with
	// ErrNotFound (bed), patient.ErrNotFound, or ErrNotAvailable.
	Assign(ctx context.Context, bedID, patientID int) (*Bed, error)
	// Release transitions an occupied bed back to available, clearing
	// the patient reference and assignment time. Fails with ErrNotFound
	// or ErrNotOccupied.
	Release(ctx context.Context, bedID int) (*Bed, error)
}
