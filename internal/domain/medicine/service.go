package medicine

import (
	"context"
	"fmt"
)

type Service struct {
	medicines Repository
}

func NewService(medicines Repository) *Service {
	return &Service{medicines: medicines}
}

func (s *Service) Create(ctx context.Context, m *Medicine) error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.ExpiryDate == "" {
		return fmt.Errorf("expiry_date is required")
	}
	if m.MinimumStockLevel <= 0 {
		m.MinimumStockLevel = DefaultMinimumStock
	}
	return s.medicines.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, id int) (*Medicine, error) {
	return s.medicines.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Medicine, error) {
	return s.medicines.List(ctx)
}

func (s *Service) UpdateStock(ctx context.Context, id, newQuantity int) (*Medicine, error) {
	return s.medicines.UpdateStock(ctx, id, newQuantity)
}

func (s *Service) ListLowStock(ctx context.Context) ([]*Medicine, error) {
	return s.medicines.ListLowStock(ctx)
}

func (s *Service) ListExpired(ctx context.Context) ([]*Medicine, error) {
	return s.medicines.ListExpired(ctx)
}
