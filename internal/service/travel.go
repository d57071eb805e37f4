package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pereras/fueltrackr/backend/internal/domain"
	"github.com/pereras/fueltrackr/backend/internal/repo"
)

// TravelLogInput carries the fields an employee submits for a new travel
// log. The owner and the derived total are never taken from the wire: the
// owner comes from the verified session identity and the total is computed
// here from the meter readings.
type TravelLogInput struct {
	Date       time.Time
	MeterStart float64
	MeterEnd   float64
	OfficialKm float64
	PrivateKm  float64
	Remarks    string
}

// TravelService implements business logic for travel log operations.
// It holds the users repo as well because the fleet summary needs the full
// user list to report zero-distance drivers.
type TravelService struct {
	logs  repo.TravelLogRepo
	users repo.UserRepo
}

// NewTravelService constructs a TravelService backed by the provided repos.
func NewTravelService(logs repo.TravelLogRepo, users repo.UserRepo) *TravelService {
	return &TravelService{logs: logs, users: users}
}

// Create validates and persists a new travel log owned by the caller.
// A zero date defaults to today. TotalKm is derived via domain.ComputeTotal;
// officialKm + privateKm is deliberately not checked against it.
func (s *TravelService) Create(ctx context.Context, owner domain.Identity, in TravelLogInput) (domain.TravelLog, error) {
	if err := validateTravelInput(in); err != nil {
		return domain.TravelLog{}, err
	}

	date := in.Date
	if date.IsZero() {
		now := time.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	log := domain.TravelLog{
		UserEmail:  owner.Email,
		Date:       date,
		MeterStart: in.MeterStart,
		MeterEnd:   in.MeterEnd,
		OfficialKm: in.OfficialKm,
		PrivateKm:  in.PrivateKm,
		TotalKm:    domain.ComputeTotal(in.MeterStart, in.MeterEnd),
		Remarks:    in.Remarks,
	}

	created, err := s.logs.Create(ctx, log)
	if err != nil {
		return domain.TravelLog{}, fmt.Errorf("service.TravelService.Create: %w", err)
	}
	return created, nil
}

// ListMine returns the caller's own logs, most recent first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TravelService) ListMine(ctx context.Context, owner domain.Identity) ([]domain.TravelLog, error) {
	logs, err := s.logs.ListByUserEmail(ctx, owner.Email)
	if err != nil {
		return nil, fmt.Errorf("service.TravelService.ListMine: %w", err)
	}
	if logs == nil {
		return []domain.TravelLog{}, nil
	}
	return logs, nil
}

// ListAll returns every user's logs, most recent first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TravelService) ListAll(ctx context.Context) ([]domain.TravelLog, error) {
	logs, err := s.logs.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TravelService.ListAll: %w", err)
	}
	if logs == nil {
		return []domain.TravelLog{}, nil
	}
	return logs, nil
}

// Summarize recomputes the fleet-wide aggregate from the current log and
// user collections. Nothing is cached: the summary is always a pure function
// of what is in the database right now.
func (s *TravelService) Summarize(ctx context.Context) (domain.Summary, error) {
	logs, err := s.logs.ListAll(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("service.TravelService.Summarize: %w", err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("service.TravelService.Summarize: %w", err)
	}
	return domain.Aggregate(logs, users), nil
}

// validateTravelInput enforces the business rules for a new log entry.
// Meter readings and km figures must be non-negative. meter_end < meter_start
// is allowed — the derived total clamps to zero instead.
func validateTravelInput(in TravelLogInput) error {
	switch {
	case in.MeterStart < 0:
		return fmt.Errorf("%w: meter_start must not be negative", domain.ErrValidation)
	case in.MeterEnd < 0:
		return fmt.Errorf("%w: meter_end must not be negative", domain.ErrValidation)
	case in.OfficialKm < 0:
		return fmt.Errorf("%w: official_km must not be negative", domain.ErrValidation)
	case in.PrivateKm < 0:
		return fmt.Errorf("%w: private_km must not be negative", domain.ErrValidation)
	}
	return nil
}
