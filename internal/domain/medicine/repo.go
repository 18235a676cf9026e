package medicine

import "context"

type Repository interface {
	Create(ctx context.Context, m *Medicine) error
	GetByID(ctx context.Context, id int) (*Medicine, error)
	List(ctx context.Context) ([]*Medicine, error)
	// UpdateStock overwrites the quantity unconditionally and persists.
	UpdateStock(ctx context.Context, id, newQuantity int) (*Medicine, error)
	// ListLowStock and ListExpired are computed fresh on every call.
	ListLowStock(ctx context.Context) ([]*Medicine, error)
	ListExpired(ctx context.Context) ([]*Medicine, error)
}
