package store

import (
	"context"
	"time"

	"github.com/hms/hms/internal/domain/bed"
	"github.com/hms/hms/internal/domain/dashboard"
)

// Stats computes the dashboard snapshot in one pass under the store
// lock, so the counts are mutually consistent. Patients are counted
// active-only; beds, doctors, and medicines are counted whole.
func (s *Store) Stats(_ context.Context) (*dashboard.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &dashboard.Stats{
		TotalDoctors:   len(s.doc.Doctors),
		TotalBeds:      len(s.doc.Beds),
		TotalMedicines: len(s.doc.Medicines),
	}
	for _, p := range s.doc.Patients {
		if p.IsActive {
			stats.TotalPatients++
		}
	}
	for _, b := range s.doc.Beds {
		if b.Status == bed.StatusOccupied {
			stats.OccupiedBeds++
		} else {
			stats.AvailableBeds++
		}
	}
	today := time.Now().UTC().Format("2006-01-02")
	for _, m := range s.doc.Medicines {
		if m.LowStock() {
			stats.LowStockMedicines++
		}
		if m.ExpiredAsOf(today) {
			stats.ExpiredMedicines++
		}
	}
	return stats, nil
}
