// Package seed loads the demo dataset: three accounts, two patients,
// two doctors, three beds, and two medicines. Seeding is skipped when
// any user account already exists, so it is safe to run on every start.
package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/bed"
	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/medicine"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/user"
	"github.com/hms/hms/internal/store"
)

// Run populates the store with the demo dataset unless users already
// exist.
func Run(ctx context.Context, s *store.Store, logger zerolog.Logger) error {
	count, err := s.Users().Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		logger.Info().Int("users", count).Msg("store already has accounts, skipping seed")
		return nil
	}

	users := user.NewService(s.Users())
	for _, in := range []user.RegisterInput{
		{Username: "admin", Password: "admin123", Role: "admin", FirstName: "Admin", LastName: "User", Email: "admin@hospital.com"},
		{Username: "doctor", Password: "doctor123", Role: "doctor", FirstName: "Dr. John", LastName: "Smith", Email: "john.smith@hospital.com"},
		{Username: "patient", Password: "patient123", Role: "patient", FirstName: "Jane", LastName: "Doe", Email: "jane.doe@email.com"},
	} {
		if _, err := users.Register(ctx, in); err != nil {
			return fmt.Errorf("seed user %s: %w", in.Username, err)
		}
	}

	patients := patient.NewService(s.Patients())
	for _, p := range []*patient.Patient{
		{FirstName: "Alice", LastName: "Johnson", Age: 35, Gender: "Female", Phone: "123-456-7890", Email: "alice@email.com", MedicalHistory: "Diabetes", Allergies: "Penicillin"},
		{FirstName: "Bob", LastName: "Wilson", Age: 42, Gender: "Male", Phone: "123-456-7891", Email: "bob@email.com", MedicalHistory: "Asthma", Allergies: "None"},
	} {
		if err := patients.Create(ctx, p); err != nil {
			return fmt.Errorf("seed patient %s %s: %w", p.FirstName, p.LastName, err)
		}
	}

	doctors := doctor.NewService(s.Doctors())
	for _, d := range []*doctor.Doctor{
		{FirstName: "Dr. Sarah", LastName: "Brown", Specialization: "Cardiology", Phone: "123-456-7801", Email: "sarah@hospital.com", Shift: "Morning", LicenseNumber: "DOC001"},
		{FirstName: "Dr. Michael", LastName: "Davis", Specialization: "Neurology", Phone: "123-456-7802", Email: "michael@hospital.com", Shift: "Evening", LicenseNumber: "DOC002"},
	} {
		if err := doctors.Create(ctx, d); err != nil {
			return fmt.Errorf("seed doctor %s %s: %w", d.FirstName, d.LastName, err)
		}
	}

	beds := bed.NewService(s.Beds())
	for _, b := range []*bed.Bed{
		{BedNumber: "G001", BedType: "general", Ward: "Ward A"},
		{BedNumber: "ICU001", BedType: "icu", Ward: "ICU"},
		{BedNumber: "ER001", BedType: "emergency", Ward: "Emergency"},
	} {
		if err := beds.Create(ctx, b); err != nil {
			return fmt.Errorf("seed bed %s: %w", b.BedNumber, err)
		}
	}

	medicines := medicine.NewService(s.Medicines())
	for _, m := range []*medicine.Medicine{
		{Name: "Paracetamol", ExpiryDate: "2025-12-31", Quantity: 100, UnitPrice: 5.50, Category: "Painkiller", MinimumStockLevel: 20},
		{Name: "Amoxicillin", ExpiryDate: "2024-06-30", Quantity: 5, UnitPrice: 15.75, Category: "Antibiotic", MinimumStockLevel: 10},
	} {
		if err := medicines.Create(ctx, m); err != nil {
			return fmt.Errorf("seed medicine %s: %w", m.Name, err)
		}
	}

	logger.Info().Msg("demo data seeded")
	return nil
}
