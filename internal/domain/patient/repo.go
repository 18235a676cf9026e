package patient

import "context"

type Repository interface {
	// Create allocates the ID, stamps CreatedAt, inserts, and persists.
	Create(ctx context.Context, p *Patient) error
	// GetByID returns ErrNotFound for unknown IDs, including
	// soft-deleted records' IDs it still resolves (soft-deleted patients
	// remain readable).
	GetByID(ctx context.Context, id int) (*Patient, error)
	// ListActive returns only IsActive records, ascending by ID.
	ListActive(ctx context.Context) ([]*Patient, error)
	// Update applies the patch and persists. ErrNotFound for unknown IDs.
	Update(ctx context.Context, id int, patch Patch) (*Patient, error)
	// SoftDelete flips IsActive to false and persists, regardless of the
	// current flag value.
	SoftDelete(ctx context.Context, id int) error
}
