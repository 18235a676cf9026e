package store

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/bed"
	"github.com/hms/hms/internal/domain/medicine"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/user"
	"github.com/hms/hms/internal/platform/blob"
)

func openMemory(t *testing.T) (*Store, *blob.MemoryStore) {
	t.Helper()
	b := blob.NewMemory()
	return Open(context.Background(), b, zerolog.Nop()), b
}

func TestOpen_EmptyBlob(t *testing.T) {
	s, _ := openMemory(t)

	patients, err := s.Patients().ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patients) != 0 {
		t.Errorf("expected empty store, got %d patients", len(patients))
	}
}

func TestOpen_CorruptBlob(t *testing.T) {
	ctx := context.Background()
	b := blob.NewMemory()
	if err := b.Save(ctx, []byte("{not json")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := Open(ctx, b, zerolog.Nop())
	p := &patient.Patient{FirstName: "Alice", LastName: "Johnson", Age: 35, IsActive: true}
	if err := s.Patients().Create(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 1 {
		t.Errorf("expected fresh counters after corrupt load, got ID %d", p.ID)
	}
}

func TestReload_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, b := openMemory(t)

	u := &user.User{Username: "admin", PasswordHash: user.HashPassword("admin123"), Role: "admin", IsActive: true}
	if err := s.Users().Create(ctx, u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := &patient.Patient{FirstName: "Alice", LastName: "Johnson", Age: 35, Gender: "Female", IsActive: true}
	if err := s.Patients().Create(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := &medicine.Medicine{Name: "Paracetamol", ExpiryDate: "2999-12-31", Quantity: 100, UnitPrice: 5.50, MinimumStockLevel: 20}
	if err := s.Medicines().Create(ctx, m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded := Open(ctx, b, zerolog.Nop())

	gotUser, err := reloaded.Users().GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotUser.ID != u.ID || gotUser.PasswordHash != u.PasswordHash {
		t.Errorf("user did not survive reload: %+v", gotUser)
	}
	gotPatient, err := reloaded.Patients().GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPatient.FirstName != "Alice" || gotPatient.Age != 35 {
		t.Errorf("patient did not survive reload: %+v", gotPatient)
	}
	gotMedicine, err := reloaded.Medicines().GetByID(ctx, m.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMedicine.UnitPrice != 5.50 || gotMedicine.MinimumStockLevel != 20 {
		t.Errorf("medicine did not survive reload: %+v", gotMedicine)
	}

	// Counters continue where they left off.
	p2 := &patient.Patient{FirstName: "Bob", LastName: "Wilson", Age: 42, IsActive: true}
	if err := reloaded.Patients().Create(ctx, p2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p2.ID != p.ID+1 {
		t.Errorf("expected ID %d after reload, got %d", p.ID+1, p2.ID)
	}
}

func TestIDs_NotReusedAfterSoftDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemory(t)
	repo := s.Patients()

	first := &patient.Patient{FirstName: "Alice", LastName: "Johnson", Age: 35, IsActive: true}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.SoftDelete(ctx, first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := &patient.Patient{FirstName: "Bob", LastName: "Wilson", Age: 42, IsActive: true}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID <= first.ID {
		t.Errorf("expected strictly increasing IDs, got %d after %d", second.ID, first.ID)
	}
}

func TestUsers_DuplicateLeavesOriginal(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemory(t)
	repo := s.Users()

	original := &user.User{Username: "admin", PasswordHash: user.HashPassword("admin123"), Role: "admin", IsActive: true}
	if err := repo.Create(ctx, original); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dup := &user.User{Username: "admin", PasswordHash: user.HashPassword("other"), Role: "doctor", IsActive: true}
	if err := repo.Create(ctx, dup); !errors.Is(err, user.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}

	got, err := repo.GetByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Role != "admin" || !user.VerifyPassword("admin123", got.PasswordHash) {
		t.Errorf("original record was disturbed: %+v", got)
	}
}

func TestPatients_SoftDeleteHidesFromListButStaysReadable(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemory(t)
	repo := s.Patients()

	p := &patient.Patient{FirstName: "Alice", LastName: "Johnson", Age: 35, IsActive: true}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.SoftDelete(ctx, p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	active, _ := repo.ListActive(ctx)
	if len(active) != 0 {
		t.Errorf("expected soft-deleted patient hidden from list, got %d", len(active))
	}
	got, err := repo.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("expected soft-deleted patient readable by ID: %v", err)
	}
	if got.IsActive {
		t.Error("expected IsActive false after soft delete")
	}
}

func TestBeds_AssignReleaseCycle(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemory(t)

	p := &patient.Patient{FirstName: "Alice", LastName: "Johnson", Age: 35, IsActive: true}
	if err := s.Patients().Create(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b := &bed.Bed{BedNumber: "G001", BedType: "general", Ward: "Ward A"}
	if err := s.Beds().Create(ctx, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != bed.StatusAvailable || b.PatientID != nil || b.AssignedAt != nil {
		t.Fatalf("new bed must start available and unassigned: %+v", b)
	}

	assigned, err := s.Beds().Assign(ctx, b.ID, p.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assigned.Status != bed.StatusOccupied || assigned.PatientID == nil || *assigned.PatientID != p.ID || assigned.AssignedAt == nil {
		t.Errorf("occupied bed must carry patient and assignment time: %+v", assigned)
	}

	if _, err := s.Beds().Assign(ctx, b.ID, p.ID); !errors.Is(err, bed.ErrNotAvailable) {
		t.Errorf("expected ErrNotAvailable on double assign, got %v", err)
	}

	released, err := s.Beds().Release(ctx, b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if released.Status != bed.StatusAvailable || released.PatientID != nil || released.AssignedAt != nil {
		t.Errorf("released bed must match its pre-assignment shape: %+v", released)
	}
	if !released.CreatedAt.Equal(b.CreatedAt) {
		t.Errorf("release must not touch CreatedAt")
	}

	if _, err := s.Beds().Release(ctx, b.ID); !errors.Is(err, bed.ErrNotOccupied) {
		t.Errorf("expected ErrNotOccupied on double release, got %v", err)
	}
}

func TestBeds_AssignErrorOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemory(t)

	if _, err := s.Beds().Assign(ctx, 99, 99); !errors.Is(err, bed.ErrNotFound) {
		t.Errorf("expected bed ErrNotFound first, got %v", err)
	}

	b := &bed.Bed{BedNumber: "G001", BedType: "general"}
	if err := s.Beds().Create(ctx, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Beds().Assign(ctx, b.ID, 99); !errors.Is(err, patient.ErrNotFound) {
		t.Errorf("expected patient ErrNotFound, got %v", err)
	}
}

func TestMedicines_LowStockAndExpired(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemory(t)
	repo := s.Medicines()

	expired := &medicine.Medicine{Name: "Amoxicillin", ExpiryDate: "2000-01-01", Quantity: 5, MinimumStockLevel: 10}
	fresh := &medicine.Medicine{Name: "Paracetamol", ExpiryDate: "2999-12-31", Quantity: 100, MinimumStockLevel: 20}
	for _, m := range []*medicine.Medicine{expired, fresh} {
		if err := repo.Create(ctx, m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	low, _ := repo.ListLowStock(ctx)
	if len(low) != 1 || low[0].Name != "Amoxicillin" {
		t.Errorf("expected only Amoxicillin low on stock, got %d entries", len(low))
	}
	exp, _ := repo.ListExpired(ctx)
	if len(exp) != 1 || exp[0].Name != "Amoxicillin" {
		t.Errorf("expected only Amoxicillin expired, got %d entries", len(exp))
	}
}

func TestStats_EndToEnd(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemory(t)

	alice := &patient.Patient{FirstName: "Alice", LastName: "Johnson", Age: 35, IsActive: true}
	bob := &patient.Patient{FirstName: "Bob", LastName: "Wilson", Age: 42, IsActive: true}
	for _, p := range []*patient.Patient{alice, bob} {
		if err := s.Patients().Create(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if err := s.Patients().SoftDelete(ctx, bob.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	beds := []*bed.Bed{
		{BedNumber: "G001", BedType: "general", Ward: "Ward A"},
		{BedNumber: "ICU001", BedType: "icu", Ward: "ICU"},
	}
	for _, b := range beds {
		if err := s.Beds().Create(ctx, b); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := s.Beds().Assign(ctx, beds[0].ID, alice.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	medicines := []*medicine.Medicine{
		{Name: "Paracetamol", ExpiryDate: "2999-12-31", Quantity: 100, MinimumStockLevel: 20},
		{Name: "Amoxicillin", ExpiryDate: "2000-01-01", Quantity: 5, MinimumStockLevel: 10},
	}
	for _, m := range medicines {
		if err := s.Medicines().Create(ctx, m); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	stats, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalPatients != 1 {
		t.Errorf("expected 1 active patient, got %d", stats.TotalPatients)
	}
	if stats.TotalBeds != 2 || stats.OccupiedBeds != 1 || stats.AvailableBeds != 1 {
		t.Errorf("unexpected bed counts: %+v", stats)
	}
	if stats.TotalMedicines != 2 || stats.LowStockMedicines != 1 || stats.ExpiredMedicines != 1 {
		t.Errorf("unexpected medicine counts: %+v", stats)
	}
}

func TestRepos_ReturnIsolatedCopies(t *testing.T) {
	ctx := context.Background()
	s, _ := openMemory(t)
	repo := s.Patients()

	p := &patient.Patient{FirstName: "Alice", LastName: "Johnson", Age: 35, IsActive: true}
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := repo.GetByID(ctx, p.ID)
	got.FirstName = "Mallory"

	again, _ := repo.GetByID(ctx, p.ID)
	if again.FirstName != "Alice" {
		t.Errorf("mutating a returned record must not touch the store, got %q", again.FirstName)
	}
}
