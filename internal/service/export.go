package service

import (
	"context"
	"fmt"

	"github.com/pereras/fueltrackr/backend/internal/domain"
	"github.com/pereras/fueltrackr/backend/internal/repo"
	"github.com/pereras/fueltrackr/backend/internal/report"
)

// ExportResource identifies which dataset an export covers.
type ExportResource string

const (
	// ExportUsers is the user directory (no credentials included).
	ExportUsers ExportResource = "users"
	// ExportTravels is the full travel log table across all users.
	ExportTravels ExportResource = "travels"
	// ExportSummary is the one-row fleet aggregate.
	ExportSummary ExportResource = "summary"
)

// ParseExportResource validates a user-supplied resource name.
func ParseExportResource(s string) (ExportResource, error) {
	switch ExportResource(s) {
	case ExportUsers, ExportTravels, ExportSummary:
		return ExportResource(s), nil
	default:
		return "", fmt.Errorf("%w: unknown export resource %q", domain.ErrValidation, s)
	}
}

// Filename returns the base download filename (without extension) for the
// resource.
func (r ExportResource) Filename() string {
	switch r {
	case ExportUsers:
		return "user_list"
	case ExportSummary:
		return "analytics_summary"
	default:
		return "travel_logs"
	}
}

// ExportService assembles report tables from the current database state.
// Rendering to CSV/JSON/PDF is the report package's job; this service only
// decides what the rows are.
type ExportService struct {
	users repo.UserRepo
	logs  repo.TravelLogRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(users repo.UserRepo, logs repo.TravelLogRepo) *ExportService {
	return &ExportService{users: users, logs: logs}
}

// BuildTable fetches the named resource and lays it out as a report table
// with a stable column order.
func (s *ExportService) BuildTable(ctx context.Context, resource ExportResource) (report.Table, error) {
	switch resource {
	case ExportUsers:
		return s.usersTable(ctx)
	case ExportTravels:
		return s.travelsTable(ctx)
	case ExportSummary:
		return s.summaryTable(ctx)
	default:
		return report.Table{}, fmt.Errorf("%w: unknown export resource %q", domain.ErrValidation, string(resource))
	}
}

// usersTable lists every account. Password hashes never appear in exports.
func (s *ExportService) usersTable(ctx context.Context) (report.Table, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return report.Table{}, fmt.Errorf("service.ExportService.usersTable: %w", err)
	}

	t := report.Table{
		Title:   "User List",
		Columns: []string{"email", "name", "fuel_card_no", "role", "created_at"},
	}
	for _, u := range users {
		t.Rows = append(t.Rows, []any{u.Email, u.Name, u.FuelCardNo, string(u.Role), u.CreatedAt.Format("2006-01-02")})
	}
	return t, nil
}

// travelsTable lists every travel log across all users.
func (s *ExportService) travelsTable(ctx context.Context) (report.Table, error) {
	logs, err := s.logs.ListAll(ctx)
	if err != nil {
		return report.Table{}, fmt.Errorf("service.ExportService.travelsTable: %w", err)
	}

	t := report.Table{
		Title:   "Travel Logs",
		Columns: []string{"date", "user_email", "meter_start", "meter_end", "official_km", "private_km", "total_km", "remarks"},
	}
	for _, l := range logs {
		t.Rows = append(t.Rows, []any{
			l.Date.Format("2006-01-02"), l.UserEmail,
			l.MeterStart, l.MeterEnd, l.OfficialKm, l.PrivateKm, l.TotalKm,
			l.Remarks,
		})
	}
	return t, nil
}

// summaryTable is the one-row fleet aggregate: official and private totals
// plus the number of registered drivers.
func (s *ExportService) summaryTable(ctx context.Context) (report.Table, error) {
	logs, err := s.logs.ListAll(ctx)
	if err != nil {
		return report.Table{}, fmt.Errorf("service.ExportService.summaryTable: %w", err)
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return report.Table{}, fmt.Errorf("service.ExportService.summaryTable: %w", err)
	}

	sum := domain.Aggregate(logs, users)
	return report.Table{
		Title:   "Analytics Summary",
		Columns: []string{"official_total", "private_total", "users"},
		Rows:    [][]any{{sum.OfficialTotal, sum.PrivateTotal, len(users)}},
	}, nil
}
