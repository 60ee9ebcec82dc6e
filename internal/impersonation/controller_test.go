package impersonation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxali/salon-admin/internal/storage"
)

func TestEnterAndCurrent(t *testing.T) {
	kv := storage.NewMemory()
	c := NewController(kv)
	ctx := context.Background()
	adminID := uuid.New()
	tenantID := uuid.New()

	require.NoError(t, c.Enter(ctx, adminID, tenantID, "Glow Studio"))

	flag, err := c.Current(ctx, adminID)
	require.NoError(t, err)
	require.NotNil(t, flag)
	assert.Equal(t, tenantID, flag.TenantID)
	assert.Equal(t, "Glow Studio", flag.TenantName)
	assert.True(t, flag.Active)
}

func TestEnterRejectsEmptyTenant(t *testing.T) {
	c := NewController(storage.NewMemory())
	assert.Error(t, c.Enter(context.Background(), uuid.New(), uuid.Nil, "x"))
}

func TestExitClearsFlag(t *testing.T) {
	kv := storage.NewMemory()
	c := NewController(kv)
	ctx := context.Background()
	adminID := uuid.New()

	require.NoError(t, c.Enter(ctx, adminID, uuid.New(), "Glow Studio"))
	require.NoError(t, c.Exit(ctx, adminID))

	flag, err := c.Current(ctx, adminID)
	require.NoError(t, err)
	assert.Nil(t, flag)
}

func TestCurrent_AbsentFlag(t *testing.T) {
	c := NewController(storage.NewMemory())
	flag, err := c.Current(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, flag)
}

func TestCurrent_HalfWrittenFlagTreatedAsAbsent(t *testing.T) {
	kv := storage.NewMemory()
	c := NewController(kv)
	ctx := context.Background()
	adminID := uuid.New()

	// Active marker without a tenant target.
	require.NoError(t, kv.Set(ctx, "impersonate:"+adminID.String()+":active", "true"))

	flag, err := c.Current(ctx, adminID)
	require.NoError(t, err)
	assert.Nil(t, flag)
}

func TestFlagsAreScopedPerAdmin(t *testing.T) {
	kv := storage.NewMemory()
	c := NewController(kv)
	ctx := context.Background()
	first := uuid.New()
	second := uuid.New()

	require.NoError(t, c.Enter(ctx, first, uuid.New(), "Glow Studio"))

	flag, err := c.Current(ctx, second)
	require.NoError(t, err)
	assert.Nil(t, flag)
}
