package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pereras/fueltrackr/backend/internal/domain"
	"github.com/pereras/fueltrackr/backend/internal/handler"
	"github.com/pereras/fueltrackr/backend/internal/middleware"
	"github.com/pereras/fueltrackr/backend/internal/report"
	"github.com/pereras/fueltrackr/backend/internal/service"
)

// mockUserServicer is a test double for handler.UserServicer.
// Set only the method fields your test needs.
type mockUserServicer struct {
	register   func(ctx context.Context, in service.RegisterInput) (domain.User, error)
	login      func(ctx context.Context, email, password string) (string, domain.User, error)
	getByEmail func(ctx context.Context, email string) (domain.User, error)
	list       func(ctx context.Context) ([]domain.User, error)
	updateRole func(ctx context.Context, actor domain.Identity, email string, role domain.Role) (domain.User, error)
	delete     func(ctx context.Context, actor domain.Identity, email string) error
}

func (m *mockUserServicer) Register(ctx context.Context, in service.RegisterInput) (domain.User, error) {
	return m.register(ctx, in)
}
func (m *mockUserServicer) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	return m.login(ctx, email, password)
}
func (m *mockUserServicer) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockUserServicer) List(ctx context.Context) ([]domain.User, error) {
	return m.list(ctx)
}
func (m *mockUserServicer) UpdateRole(ctx context.Context, actor domain.Identity, email string, role domain.Role) (domain.User, error) {
	return m.updateRole(ctx, actor, email, role)
}
func (m *mockUserServicer) Delete(ctx context.Context, actor domain.Identity, email string) error {
	return m.delete(ctx, actor, email)
}

var _ handler.UserServicer = (*mockUserServicer)(nil)

// mockTravelServicer is a test double for handler.TravelServicer.
type mockTravelServicer struct {
	create    func(ctx context.Context, owner domain.Identity, in service.TravelLogInput) (domain.TravelLog, error)
	listMine  func(ctx context.Context, owner domain.Identity) ([]domain.TravelLog, error)
	listAll   func(ctx context.Context) ([]domain.TravelLog, error)
	summarize func(ctx context.Context) (domain.Summary, error)
}

func (m *mockTravelServicer) Create(ctx context.Context, owner domain.Identity, in service.TravelLogInput) (domain.TravelLog, error) {
	return m.create(ctx, owner, in)
}
func (m *mockTravelServicer) ListMine(ctx context.Context, owner domain.Identity) ([]domain.TravelLog, error) {
	return m.listMine(ctx, owner)
}
func (m *mockTravelServicer) ListAll(ctx context.Context) ([]domain.TravelLog, error) {
	return m.listAll(ctx)
}
func (m *mockTravelServicer) Summarize(ctx context.Context) (domain.Summary, error) {
	return m.summarize(ctx)
}

var _ handler.TravelServicer = (*mockTravelServicer)(nil)

// mockExporter is a test double for handler.Exporter.
type mockExporter struct {
	buildTable func(ctx context.Context, resource service.ExportResource) (report.Table, error)
}

func (m *mockExporter) BuildTable(ctx context.Context, resource service.ExportResource) (report.Table, error) {
	return m.buildTable(ctx, resource)
}

var _ handler.Exporter = (*mockExporter)(nil)

// ---- helpers ---------------------------------------------------------------

const (
	employeeToken = "employee-token"
	adminToken    = "admin-token"
)

// stubVerifier maps two fixed bearer tokens onto identities so tests can
// exercise the real authn/authz middleware without signing JWTs.
type stubVerifier struct{}

func (stubVerifier) Verify(token string) (domain.Identity, error) {
	switch token {
	case employeeToken:
		return domain.Identity{Email: "emp@haycarb.com", Role: domain.RoleEmployee}, nil
	case adminToken:
		return domain.Identity{Email: "admin@haycarb.com", Role: domain.RoleAdmin}, nil
	}
	return domain.Identity{}, fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
}

// newHTTPHandler wires a Server with the given mocks into the chi router,
// with the real authentication and role middleware in front of protected
// routes. This mirrors exactly how main.go wires it in production.
func newHTTPHandler(users handler.UserServicer, travels handler.TravelServicer, export handler.Exporter) http.Handler {
	srv := handler.NewServer(users, travels, export, []byte("openapi: 3.0.3\n"))
	return srv.Routes(middleware.NewAuthenticator(stubVerifier{}))
}

func userFixture() domain.User {
	now := time.Now().UTC()
	return domain.User{
		Email:      "emp@haycarb.com",
		Name:       "Nimal Perera",
		FuelCardNo: "FC-1001",
		Role:       domain.RoleEmployee,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func travelLogFixture() domain.TravelLog {
	return domain.TravelLog{
		ID:         uuid.New(),
		UserEmail:  "emp@haycarb.com",
		Date:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		MeterStart: 1000,
		MeterEnd:   1150,
		OfficialKm: 120,
		PrivateKm:  30,
		TotalKm:    150,
		Remarks:    "site visit",
		CreatedAt:  time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
