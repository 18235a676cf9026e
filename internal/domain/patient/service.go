package patient

import (
	"context"
	"fmt"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if p.Age < 0 {
		return fmt.Errorf("age must be non-negative")
	}
	p.IsActive = true
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) ListActive(ctx context.Context) ([]*Patient, error) {
	return s.patients.ListActive(ctx)
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (*Patient, error) {
	if patch.Age != nil && *patch.Age < 0 {
		return nil, fmt.Errorf("age must be non-negative")
	}
	return s.patients.Update(ctx, id, patch)
}

func (s *Service) SoftDelete(ctx context.Context, id int) error {
	return s.patients.SoftDelete(ctx, id)
}
