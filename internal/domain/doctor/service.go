package doctor

import (
	"context"
	"fmt"
)

type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if d.FirstName == "" || d.LastName == "" {
		return fmt.Errorf("first_name and last_name are required")
	}
	if d.Specialization == "" {
		return fmt.Errorf("specialization is required")
	}
	d.IsAvailable = true
	return s.doctors.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id int) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int, patch Patch) (*Doctor, error) {
	return s.doctors.Update(ctx, id, patch)
}
