package store

import (
	"context"
	"sort"
	"time"

	"github.com/hms/hms/internal/domain/bed"
	"github.com/hms/hms/internal/domain/patient"
)

type bedRepo struct {
	s *Store
}

func cloneBed(b *bed.Bed) *bed.Bed {
	cp := *b
	if b.PatientID != nil {
		pid := *b.PatientID
		cp.PatientID = &pid
	}
	if b.AssignedAt != nil {
		at := *b.AssignedAt
		cp.AssignedAt = &at
	}
	return &cp
}

func (r bedRepo) Create(ctx context.Context, b *bed.Bed) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b.ID = r.s.nextIDLocked(kindBed)
	b.Status = bed.StatusAvailable
	b.PatientID = nil
	b.AssignedAt = nil
	b.CreatedAt = time.Now().UTC()
	r.s.doc.Beds[b.ID] = cloneBed(b)
	return r.s.persistLocked(ctx)
}

func (r bedRepo) GetByID(_ context.Context, id int) (*bed.Bed, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.doc.Beds[id]
	if !ok {
		return nil, bed.ErrNotFound
	}
	return cloneBed(b), nil
}

func (r bedRepo) List(_ context.Context) ([]*bed.Bed, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*bed.Bed, 0, len(r.s.doc.Beds))
	for _, b := range r.s.doc.Beds {
		result = append(result, cloneBed(b))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Assign checks the bed first, then the patient, then availability, so
// callers can distinguish the three failure modes. The patient's active
// flag is deliberately not consulted.
func (r bedRepo) Assign(ctx context.Context, bedID, patientID int) (*bed.Bed, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.doc.Beds[bedID]
	if !ok {
		return nil, bed.ErrNotFound
	}
	if _, ok := r.s.doc.Patients[patientID]; !ok {
		return nil, patient.ErrNotFound
	}
	if b.Status != bed.StatusAvailable {
		return nil, bed.ErrNotAvailable
	}

	now := time.Now().UTC()
	b.Status = bed.StatusOccupied
	b.PatientID = &patientID
	b.AssignedAt = &now
	if err := r.s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return cloneBed(b), nil
}

func (r bedRepo) Release(ctx context.Context, bedID int) (*bed.Bed, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.doc.Beds[bedID]
	if !ok {
		return nil, bed.ErrNotFound
	}
	if b.Status != bed.StatusOccupied {
		return nil, bed.ErrNotOccupied
	}

	b.Status = bed.StatusAvailable
	b.PatientID = nil
	b.AssignedAt = nil
	if err := r.s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return cloneBed(b), nil
}
