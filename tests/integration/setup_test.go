package integration

import (
	"os"
	"testing"

	"go.uber.org/zap"

	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/storage"
	"github.com/voxali/salon-admin/tests/testutil"
)

// TestMain runs before all tests in this package
func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

// setupTest creates a test database and returns cleanup function
func setupTest(t *testing.T) *testutil.TestDB {
	t.Helper()
	return testutil.SetupTestDB(t)
}

// identityProvider wires a LocalProvider against the test database and the
// given KV store.
func identityProvider(tdb *testutil.TestDB, kv storage.Store) *identity.LocalProvider {
	return identity.NewLocalProvider(tdb.DB, kv, testutil.TestTokenService(), zap.NewNop())
}
