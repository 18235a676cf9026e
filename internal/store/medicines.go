package store

import (
	"context"
	"sort"
	"time"

	"github.com/hms/hms/internal/domain/medicine"
)

type medicineRepo struct {
	s *Store
}

func cloneMedicine(m *medicine.Medicine) *medicine.Medicine {
	cp := *m
	return &cp
}

func (r medicineRepo) Create(ctx context.Context, m *medicine.Medicine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m.ID = r.s.nextIDLocked(kindMedicine)
	m.CreatedAt = time.Now().UTC()
	r.s.doc.Medicines[m.ID] = cloneMedicine(m)
	return r.s.persistLocked(ctx)
}

func (r medicineRepo) GetByID(_ context.Context, id int) (*medicine.Medicine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.doc.Medicines[id]
	if !ok {
		return nil, medicine.ErrNotFound
	}
	return cloneMedicine(m), nil
}

func (r medicineRepo) List(_ context.Context) ([]*medicine.Medicine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sortedLocked(func(*medicine.Medicine) bool { return true }), nil
}

func (r medicineRepo) UpdateStock(ctx context.Context, id, newQuantity int) (*medicine.Medicine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.doc.Medicines[id]
	if !ok {
		return nil, medicine.ErrNotFound
	}
	m.Quantity = newQuantity
	if err := r.s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return cloneMedicine(m), nil
}

func (r medicineRepo) ListLowStock(_ context.Context) ([]*medicine.Medicine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sortedLocked((*medicine.Medicine).LowStock), nil
}

func (r medicineRepo) ListExpired(_ context.Context) ([]*medicine.Medicine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	today := time.Now().UTC().Format("2006-01-02")
	return r.sortedLocked(func(m *medicine.Medicine) bool { return m.ExpiredAsOf(today) }), nil
}

func (r medicineRepo) sortedLocked(keep func(*medicine.Medicine) bool) []*medicine.Medicine {
	var result []*medicine.Medicine
	for _, m := range r.s.doc.Medicines {
		if keep(m) {
			result = append(result, cloneMedicine(m))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
