package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pereras/fueltrackr/backend/internal/domain"
	"github.com/pereras/fueltrackr/backend/internal/repo"
)

// travelFixture returns a domain.TravelLog owned by ownerEmail with sensible
// defaults. The owner must already exist (FK on user_email).
func travelFixture(ownerEmail string) domain.TravelLog {
	return domain.TravelLog{
		UserEmail:  ownerEmail,
		Date:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		MeterStart: 1000,
		MeterEnd:   1050,
		OfficialKm: 30,
		PrivateKm:  20,
		TotalKm:    50,
		Remarks:    "client site visit",
	}
}

// createOwner inserts a user to satisfy the travel_logs FK and returns it.
func createOwner(t *testing.T, users repo.UserRepo, email string) domain.User {
	t.Helper()
	u := userFixture()
	u.Email = email
	created, err := users.Create(context.Background(), u)
	require.NoError(t, err)
	return created
}

func TestTravelLogRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	users := repo.NewUserRepo(tx)
	logs := repo.NewTravelLogRepo(tx)
	ctx := context.Background()

	owner := createOwner(t, users, "driver@haycarb.com")
	input := travelFixture(owner.Email)

	got, err := logs.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, [16]byte{}, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, owner.Email, got.UserEmail)
	assert.True(t, got.Date.Equal(input.Date), "Date mismatch")
	assert.Equal(t, 1000.0, got.MeterStart)
	assert.Equal(t, 1050.0, got.MeterEnd)
	assert.Equal(t, 30.0, got.OfficialKm)
	assert.Equal(t, 20.0, got.PrivateKm)
	assert.Equal(t, 50.0, got.TotalKm)
	assert.Equal(t, "client site visit", got.Remarks)
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestTravelLogRepo_ListByUserEmail(t *testing.T) {
	tx := newTestTx(t)
	users := repo.NewUserRepo(tx)
	logs := repo.NewTravelLogRepo(tx)
	ctx := context.Background()

	owner := createOwner(t, users, "driver@haycarb.com")
	other := createOwner(t, users, "other@haycarb.com")

	l1 := travelFixture(owner.Email)
	l2 := travelFixture(owner.Email)
	l2.Date = l1.Date.AddDate(0, 0, 1)
	l3 := travelFixture(other.Email)

	for _, l := range []domain.TravelLog{l1, l2, l3} {
		_, err := logs.Create(ctx, l)
		require.NoError(t, err)
	}

	got, err := logs.ListByUserEmail(ctx, owner.Email)

	require.NoError(t, err)
	require.Len(t, got, 2, "only the owner's logs should be returned")
	// Ordered by date descending (most recent first).
	assert.True(t, got[0].Date.After(got[1].Date))
	for _, l := range got {
		assert.Equal(t, owner.Email, l.UserEmail)
	}
}

func TestTravelLogRepo_ListByUserEmail_Empty(t *testing.T) {
	tx := newTestTx(t)
	users := repo.NewUserRepo(tx)
	logs := repo.NewTravelLogRepo(tx)

	owner := createOwner(t, users, "driver@haycarb.com")

	got, err := logs.ListByUserEmail(context.Background(), owner.Email)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTravelLogRepo_ListAll(t *testing.T) {
	tx := newTestTx(t)
	users := repo.NewUserRepo(tx)
	logs := repo.NewTravelLogRepo(tx)
	ctx := context.Background()

	owner := createOwner(t, users, "driver@haycarb.com")
	other := createOwner(t, users, "other@haycarb.com")

	_, err := logs.Create(ctx, travelFixture(owner.Email))
	require.NoError(t, err)
	_, err = logs.Create(ctx, travelFixture(other.Email))
	require.NoError(t, err)

	got, err := logs.ListAll(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestTravelLogRepo_DeletedUserCascades(t *testing.T) {
	tx := newTestTx(t)
	users := repo.NewUserRepo(tx)
	logs := repo.NewTravelLogRepo(tx)
	ctx := context.Background()

	owner := createOwner(t, users, "driver@haycarb.com")
	_, err := logs.Create(ctx, travelFixture(owner.Email))
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, owner.Email))

	got, err := logs.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got, "deleting a user should cascade to their logs")
}
