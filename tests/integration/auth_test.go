package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/internal/storage"
	"github.com/voxali/salon-admin/tests/testutil"
)

func newProvider(tdb *testutil.TestDB) (*identity.LocalProvider, storage.Store) {
	kv := storage.NewMemory()
	return identityProvider(tdb, kv), kv
}

func TestLocalProvider_Integration_SignInAndCurrentSession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	provider, _ := newProvider(tdb)
	fixtures := testutil.NewFixtures(tdb.DB)
	ctx := context.Background()

	tenant := fixtures.CreateTenant(t)
	profile := fixtures.CreateProfile(t, testutil.WithTenant(tenant.ID), testutil.WithRole(models.RoleOwner))
	fixtures.CreateCredentials(t, profile.ID, "owner-password-1")

	session, err := provider.SignInWithCredentials(ctx, profile.Email, "owner-password-1")

	require.NoError(t, err)
	assert.Equal(t, profile.ID, session.User.ID)
	assert.Equal(t, profile.Email, session.User.Email)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)

	// The snapshot persists across provider calls.
	current, err := provider.CurrentSession(ctx, profile.ID)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, session.AccessToken, current.AccessToken)
}

func TestLocalProvider_Integration_SignInRejectsWrongPassword(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	provider, _ := newProvider(tdb)
	fixtures := testutil.NewFixtures(tdb.DB)

	profile := fixtures.CreateProfile(t)
	fixtures.CreateCredentials(t, profile.ID, "right-password")

	_, err := provider.SignInWithCredentials(context.Background(), profile.Email, "wrong-password")

	assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
}

func TestLocalProvider_Integration_RefreshRotatesTokens(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	provider, _ := newProvider(tdb)
	fixtures := testutil.NewFixtures(tdb.DB)
	ctx := context.Background()

	profile := fixtures.CreateProfile(t)
	fixtures.CreateCredentials(t, profile.ID, "owner-password-1")

	first, err := provider.SignInWithCredentials(ctx, profile.Email, "owner-password-1")
	require.NoError(t, err)

	second, err := provider.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, second.User.ID)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// Rotation revokes the old token; replaying it must fail.
	_, err = provider.Refresh(ctx, first.RefreshToken)
	assert.Error(t, err)
}

func TestLocalProvider_Integration_SignOutClearsEverything(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	provider, _ := newProvider(tdb)
	fixtures := testutil.NewFixtures(tdb.DB)
	ctx := context.Background()

	profile := fixtures.CreateProfile(t)
	fixtures.CreateCredentials(t, profile.ID, "owner-password-1")

	session, err := provider.SignInWithCredentials(ctx, profile.Email, "owner-password-1")
	require.NoError(t, err)

	require.NoError(t, provider.SignOut(ctx, profile.ID))

	current, err := provider.CurrentSession(ctx, profile.ID)
	require.NoError(t, err)
	assert.Nil(t, current)

	_, err = provider.Refresh(ctx, session.RefreshToken)
	assert.Error(t, err)
}
