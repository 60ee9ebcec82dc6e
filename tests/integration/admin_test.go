package integration

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxali/salon-admin/internal/services"
	"github.com/voxali/salon-admin/internal/storage"
	"github.com/voxali/salon-admin/tests/testutil"
)

func TestTenantAdmin_Integration_CreateTenantAndOwner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewTenantAdminService(tdb.DB)
	ctx := context.Background()

	tenantID, profileID, err := svc.CreateTenantAndOwner(ctx,
		"Glow Studio", "Maya Petrova", "maya@glowstudio.com", "owner-password-1")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tenantID)
	assert.NotEqual(t, uuid.Nil, profileID)

	created, err := svc.GetTenant(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, "Glow Studio", created.SalonName)
	assert.Equal(t, "Maya Petrova", created.OwnerName)

	// The provisioned owner can sign in right away.
	provider := identityProvider(tdb, storage.NewMemory())
	session, err := provider.SignInWithCredentials(ctx, "maya@glowstudio.com", "owner-password-1")
	require.NoError(t, err)
	assert.Equal(t, profileID, session.User.ID)
}

func TestTenantAdmin_Integration_CreateRejectsDuplicateEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewTenantAdminService(tdb.DB)
	ctx := context.Background()

	_, _, err := svc.CreateTenantAndOwner(ctx,
		"First Salon", "Owner One", "taken@example.com", "owner-password-1")
	require.NoError(t, err)

	_, _, err = svc.CreateTenantAndOwner(ctx,
		"Second Salon", "Owner Two", "taken@example.com", "owner-password-2")
	assert.Error(t, err)
}

func TestTenantAdmin_Integration_ListTenantsWithCounts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewTenantAdminService(tdb.DB)
	fixtures := testutil.NewFixtures(tdb.DB)
	ctx := context.Background()

	salon := fixtures.CreateTenant(t)
	fixtures.CreateStaff(t, salon.ID)
	fixtures.CreateStaff(t, salon.ID)
	fixtures.CreateClient(t, salon.ID)

	listings, err := svc.ListTenants(ctx)

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, salon.ID, listings[0].ID)
	assert.Equal(t, 2, listings[0].Staff)
	assert.Equal(t, 1, listings[0].Clients)
	assert.Equal(t, 0, listings[0].Bookings)
}

func TestTenantAdmin_Integration_GetTenant_Missing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewTenantAdminService(tdb.DB)

	_, err := svc.GetTenant(context.Background(), uuid.New())

	assert.ErrorIs(t, err, services.ErrTenantNotFound)
}

func TestTenantAdmin_Integration_Overview(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewTenantAdminService(tdb.DB)
	fixtures := testutil.NewFixtures(tdb.DB)
	ctx := context.Background()

	salon := fixtures.CreateTenant(t)
	staff := fixtures.CreateStaff(t, salon.ID)
	service := fixtures.CreateService(t, salon.ID)
	fixtures.CreateBooking(t, salon.ID, staff.ID, service.ID)

	overview, err := svc.Overview(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, overview.Tenants)
	assert.Equal(t, 1, overview.Bookings30d)
}
