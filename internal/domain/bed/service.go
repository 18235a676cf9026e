package bed

import (
	"context"
	"fmt"
)

type Service struct {
	beds Repository
}

func NewService(beds Repository) *Service {
	return &Service{beds: beds}
}

func (s *Service) Create(ctx context.Context, b *Bed) error {
	if b.BedNumber == "" {
		return fmt.Errorf("bed_number is required")
	}
	if b.BedType == "" {
		return fmt.Errorf("bed_type is required")
	}
	b.Status = StatusAvailable
	b.PatientID = nil
	b.AssignedAt = nil
	return s.beds.Create(ctx, b)
}

func (s *Service) Get(ctx context.Context, id int) (*Bed, error) {
	return s.beds.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Bed, error) {
	return s.beds.List(ctx)
}

func (s *Service) Assign(ctx context.Context, bedID, patientID int) (*Bed, error) {
	return s.beds.Assign(ctx, bedID, patientID)
}

func (s *Service) Release(ctx context.Context, bedID int) (*Bed, error) {
	return s.beds.Release(ctx, bedID)
}
