package booking

import (
	"context"
	"fmt"

	appointmentRepo "brightsmile/database/repository/appointment"
	"brightsmile/models"
)

// databaseStore persists bookings to the structured MongoDB store through
// the appointment repository.
type databaseStore struct {
	repo appointmentRepo.AppointmentRepository
}

// NewDatabaseStore wraps the appointment repository as a Store. A nil
// repository (MongoDB not configured) yields a store that reports itself
// unconfigured without attempting I/O.
func NewDatabaseStore(repo appointmentRepo.AppointmentRepository) Store {
	return &databaseStore{repo: repo}
}

func (s *databaseStore) Name() string { return "database" }

func (s *databaseStore) Attempt(ctx context.Context, record BookingRecord) (outcome StoreOutcome) {
	outcome.Store = s.Name()

	// A driver panic must not escape the adapter boundary.
	defer func() {
		if r := recover(); r != nil {
			outcome.Status = StoreFailure
			outcome.Err = fmt.Errorf("database store panic: %v", r)
		}
	}()

	if s.repo == nil {
		outcome.Status = StoreUnconfigured
		outcome.Detail = "DATABASE_URL not set"
		return outcome
	}

	id, err := s.repo.Create(ctx, models.Appointment{
		PatientName:     record.Name,
		Email:           record.Email,
		Phone:           record.Phone,
		AppointmentDate: record.FormattedDate,
		TreatmentType:   record.Treatment,
		CreatedAt:       record.CreatedAt,
	})
	if err != nil {
		outcome.Status = StoreFailure
		outcome.Err = err
		return outcome
	}

	outcome.Status = StoreSuccess
	outcome.Detail = fmt.Sprintf("appointment %s", id)
	return outcome
}
