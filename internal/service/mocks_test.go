package service_test

import (
	"context"

	"github.com/pereras/fueltrackr/backend/internal/domain"
	"github.com/pereras/fueltrackr/backend/internal/repo"
)

// mockUserRepo is a hand-written test double for repo.UserRepo.
// Each method is a function field — set only the ones your test needs.
type mockUserRepo struct {
	create     func(ctx context.Context, user domain.User) (domain.User, error)
	getByEmail func(ctx context.Context, email string) (domain.User, error)
	list       func(ctx context.Context) ([]domain.User, error)
	updateRole func(ctx context.Context, email string, role domain.Role) (domain.User, error)
	delete     func(ctx context.Context, email string) error
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	return m.create(ctx, user)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	return m.list(ctx)
}
func (m *mockUserRepo) UpdateRole(ctx context.Context, email string, role domain.Role) (domain.User, error) {
	return m.updateRole(ctx, email, role)
}
func (m *mockUserRepo) Delete(ctx context.Context, email string) error {
	return m.delete(ctx, email)
}

// compile-time check: mockUserRepo must satisfy repo.UserRepo.
var _ repo.UserRepo = (*mockUserRepo)(nil)

// mockTravelLogRepo is a hand-written test double for repo.TravelLogRepo.
type mockTravelLogRepo struct {
	create          func(ctx context.Context, log domain.TravelLog) (domain.TravelLog, error)
	listByUserEmail func(ctx context.Context, email string) ([]domain.TravelLog, error)
	listAll         func(ctx context.Context) ([]domain.TravelLog, error)
}

func (m *mockTravelLogRepo) Create(ctx context.Context, log domain.TravelLog) (domain.TravelLog, error) {
	return m.create(ctx, log)
}
func (m *mockTravelLogRepo) ListByUserEmail(ctx context.Context, email string) ([]domain.TravelLog, error) {
	return m.listByUserEmail(ctx, email)
}
func (m *mockTravelLogRepo) ListAll(ctx context.Context) ([]domain.TravelLog, error) {
	return m.listAll(ctx)
}

// compile-time check: mockTravelLogRepo must satisfy repo.TravelLogRepo.
var _ repo.TravelLogRepo = (*mockTravelLogRepo)(nil)
