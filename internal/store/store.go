// Package store implements the hospital records entity store: five
// record collections plus per-kind ID counters held in one shared
// document, persisted whole through a blob backend after every
// mutation. It implements the repository interfaces of each domain
// package and the dashboard source.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/bed"
	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/medicine"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/user"
	"github.com/hms/hms/internal/platform/blob"
)

// Entity-kind names used as next_ids keys.
const (
	kindUser     = "user"
	kindPatient  = "patient"
	kindDoctor   = "doctor"
	kindBed      = "bed"
	kindMedicine = "medicine"
)

// document is the persisted shape: users keyed by username, the other
// collections keyed by numeric ID (serialized as decimal-string object
// keys), and the next-ID counters.
type document struct {
	Users     map[string]*user.User      `json:"users"`
	Patients  map[int]*patient.Patient   `json:"patients"`
	Doctors   map[int]*doctor.Doctor     `json:"doctors"`
	Beds      map[int]*bed.Bed           `json:"beds"`
	Medicines map[int]*medicine.Medicine `json:"medicines"`
	NextIDs   map[string]int             `json:"next_ids"`
}

func newDocument() *document {
	return &document{
		Users:     make(map[string]*user.User),
		Patients:  make(map[int]*patient.Patient),
		Doctors:   make(map[int]*doctor.Doctor),
		Beds:      make(map[int]*bed.Bed),
		Medicines: make(map[int]*medicine.Medicine),
		NextIDs: map[string]int{
			kindUser:     1,
			kindPatient:  1,
			kindDoctor:   1,
			kindBed:      1,
			kindMedicine: 1,
		},
	}
}

// normalize repairs a loaded document so every collection map exists and
// every counter is at least 1. Counters missing from an older file pick
// up from 1; present counters are trusted as-is.
func (d *document) normalize() {
	if d.Users == nil {
		d.Users = make(map[string]*user.User)
	}
	if d.Patients == nil {
		d.Patients = make(map[int]*patient.Patient)
	}
	if d.Doctors == nil {
		d.Doctors = make(map[int]*doctor.Doctor)
	}
	if d.Beds == nil {
		d.Beds = make(map[int]*bed.Bed)
	}
	if d.Medicines == nil {
		d.Medicines = make(map[int]*medicine.Medicine)
	}
	if d.NextIDs == nil {
		d.NextIDs = make(map[string]int)
	}
	for _, kind := range []string{kindUser, kindPatient, kindDoctor, kindBed, kindMedicine} {
		if d.NextIDs[kind] < 1 {
			d.NextIDs[kind] = 1
		}
	}
}

// Store owns the in-memory document and serializes every
// read-modify-write-persist sequence behind one coarse lock. It must be
// shared, not copied.
type Store struct {
	mu     sync.Mutex
	blob   blob.Store
	logger zerolog.Logger
	doc    *document
}

// Open loads the document from the blob backend. A missing or unreadable
// blob falls back to an empty store; that is the documented recovery
// path, so Open never fails on load problems.
func Open(ctx context.Context, b blob.Store, logger zerolog.Logger) *Store {
	s := &Store{blob: b, logger: logger, doc: newDocument()}

	data, err := b.Load(ctx)
	switch {
	case errors.Is(err, blob.ErrNotExist):
		logger.Info().Msg("no existing document, starting with an empty store")
		return s
	case err != nil:
		logger.Warn().Err(err).Msg("failed to load document, starting with an empty store")
		return s
	}

	doc := newDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		logger.Warn().Err(err).Msg("corrupt document, starting with an empty store")
		s.doc = newDocument()
		return s
	}
	doc.normalize()
	s.doc = doc
	logger.Info().
		Int("users", len(doc.Users)).
		Int("patients", len(doc.Patients)).
		Int("doctors", len(doc.Doctors)).
		Int("beds", len(doc.Beds)).
		Int("medicines", len(doc.Medicines)).
		Msg("document loaded")
	return s
}

// nextIDLocked allocates the next ID for kind. Callers must hold mu.
// IDs are strictly increasing, start at 1, and are never reused; the
// counter is persisted with the data so restarts continue the sequence.
func (s *Store) nextIDLocked(kind string) int {
	id := s.doc.NextIDs[kind]
	s.doc.NextIDs[kind] = id + 1
	return id
}

// persistLocked rewrites the whole document through the blob backend.
// Callers must hold mu. A write failure is the one fatal condition the
// store surfaces.
func (s *Store) persistLocked(ctx context.Context) error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := s.blob.Save(ctx, data); err != nil {
		return fmt.Errorf("persist document: %w", err)
	}
	return nil
}

// Repository accessors. Each returns a view of the same shared store
// scoped to one entity kind.

func (s *Store) Users() user.Repository         { return userRepo{s} }
func (s *Store) Patients() patient.Repository   { return patientRepo{s} }
func (s *Store) Doctors() doctor.Repository     { return doctorRepo{s} }
func (s *Store) Beds() bed.Repository           { return bedRepo{s} }
func (s *Store) Medicines() medicine.Repository { return medicineRepo{s} }
