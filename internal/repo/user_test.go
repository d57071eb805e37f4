package repo_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pereras/fueltrackr/backend/internal/domain"
	"github.com/pereras/fueltrackr/backend/internal/repo"
	"github.com/pereras/fueltrackr/backend/testutil"
)

// newTestTx opens a transaction against the test database that is rolled
// back when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; the migrations are applied once by
// TestMain in this package.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// userFixture returns a domain.User with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func userFixture() domain.User {
	return domain.User{
		Email:        "driver@haycarb.com",
		Name:         "Test Driver",
		FuelCardNo:   "FC-1042",
		PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
		Role:         domain.RoleEmployee,
	}
}

func TestUserRepo_Create(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	input := userFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, got.Email)
	assert.Equal(t, input.Name, got.Name)
	assert.Equal(t, input.FuelCardNo, got.FuelCardNo)
	assert.Equal(t, input.PasswordHash, got.PasswordHash)
	assert.Equal(t, domain.RoleEmployee, got.Role)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
	assert.False(t, got.UpdatedAt.IsZero(), "UpdatedAt should be set by DB")
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	_, err := r.Create(ctx, userFixture())
	require.NoError(t, err)

	_, err = r.Create(ctx, userFixture())

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUserRepo_GetByEmail(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, userFixture())
	require.NoError(t, err)

	got, err := r.GetByEmail(ctx, created.Email)

	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)
	assert.Equal(t, created.Name, got.Name)
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))

	_, err := r.GetByEmail(context.Background(), "nobody@haycarb.com")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_List(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	u1 := userFixture()
	u1.Email = "bravo@haycarb.com"
	u2 := userFixture()
	u2.Email = "alpha@haycarb.com"

	_, err := r.Create(ctx, u1)
	require.NoError(t, err)
	_, err = r.Create(ctx, u2)
	require.NoError(t, err)

	got, err := r.List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	// Ordered by email ascending.
	assert.Equal(t, "alpha@haycarb.com", got[0].Email)
	assert.Equal(t, "bravo@haycarb.com", got[1].Email)
}

func TestUserRepo_UpdateRole(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, userFixture())
	require.NoError(t, err)

	got, err := r.UpdateRole(ctx, created.Email, domain.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, got.Role)
	assert.True(t, got.UpdatedAt.After(created.UpdatedAt) || got.UpdatedAt.Equal(created.UpdatedAt))
}

func TestUserRepo_UpdateRole_NotFound(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))

	_, err := r.UpdateRole(context.Background(), "nobody@haycarb.com", domain.RoleAdmin)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_Delete(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, userFixture())
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.Email))

	_, err = r.GetByEmail(ctx, created.Email)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_Delete_NotFound(t *testing.T) {
	r := repo.NewUserRepo(newTestTx(t))

	err := r.Delete(context.Background(), "nobody@haycarb.com")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
