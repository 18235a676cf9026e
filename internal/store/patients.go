package store

import (
	"context"
	"sort"
	"time"

	"github.com/hms/hms/internal/domain/patient"
)

type patientRepo struct {
	s *Store
}

func clonePatient(p *patient.Patient) *patient.Patient {
	cp := *p
	return &cp
}

func (r patientRepo) Create(ctx context.Context, p *patient.Patient) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = r.s.nextIDLocked(kindPatient)
	p.CreatedAt = time.Now().UTC()
	r.s.doc.Patients[p.ID] = clonePatient(p)
	return r.s.persistLocked(ctx)
}

func (r patientRepo) GetByID(_ context.Context, id int) (*patient.Patient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.doc.Patients[id]
	if !ok {
		return nil, patient.ErrNotFound
	}
	return clonePatient(p), nil
}

func (r patientRepo) ListActive(_ context.Context) ([]*patient.Patient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*patient.Patient, 0, len(r.s.doc.Patients))
	for _, p := range r.s.doc.Patients {
		if p.IsActive {
			result = append(result, clonePatient(p))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r patientRepo) Update(ctx context.Context, id int, patch patient.Patch) (*patient.Patient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.doc.Patients[id]
	if !ok {
		return nil, patient.ErrNotFound
	}
	patch.Apply(p)
	if err := r.s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return clonePatient(p), nil
}

func (r patientRepo) SoftDelete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.doc.Patients[id]
	if !ok {
		return patient.ErrNotFound
	}
	p.IsActive = false
	return r.s.persistLocked(ctx)
}
