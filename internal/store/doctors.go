package store

import (
	"context"
	"sort"
	"time"

	"github.com/hms/hms/internal/domain/doctor"
)

type doctorRepo struct {
	s *Store
}

func cloneDoctor(d *doctor.Doctor) *doctor.Doctor {
	cp := *d
	return &cp
}

func (r doctorRepo) Create(ctx context.Context, d *doctor.Doctor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d.ID = r.s.nextIDLocked(kindDoctor)
	d.CreatedAt = time.Now().UTC()
	r.s.doc.Doctors[d.ID] = cloneDoctor(d)
	return r.s.persistLocked(ctx)
}

func (r doctorRepo) GetByID(_ context.Context, id int) (*doctor.Doctor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.doc.Doctors[id]
	if !ok {
		return nil, doctor.ErrNotFound
	}
	return cloneDoctor(d), nil
}

func (r doctorRepo) List(_ context.Context) ([]*doctor.Doctor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*doctor.Doctor, 0, len(r.s.doc.Doctors))
	for _, d := range r.s.doc.Doctors {
		result = append(result, cloneDoctor(d))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r doctorRepo) Update(ctx context.Context, id int, patch doctor.Patch) (*doctor.Doctor, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	d, ok := r.s.doc.Doctors[id]
	if !ok {
		return nil, doctor.ErrNotFound
	}
	patch.Apply(d)
	if err := r.s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return cloneDoctor(d), nil
}
