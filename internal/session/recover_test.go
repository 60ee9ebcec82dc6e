package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/storage"
)

func TestRecoverPrincipal_TopLevelUser(t *testing.T) {
	kv := storage.NewMemory()
	principalID := uuid.New()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, identity.TokenKeyPrefix+principalID.String(),
		`{"user":{"id":"`+principalID.String()+`","email":"owner@example.com"}}`))

	principal, ok := recoverPrincipalFromStorage(ctx, kv, principalID)
	require.True(t, ok)
	assert.Equal(t, principalID, principal.ID)
	assert.Equal(t, "owner@example.com", principal.Email)
}

func TestRecoverPrincipal_NestedCurrentSession(t *testing.T) {
	kv := storage.NewMemory()
	principalID := uuid.New()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, identity.TokenKeyPrefix+principalID.String(),
		`{"currentSession":{"user":{"id":"`+principalID.String()+`","email":"nested@example.com"}}}`))

	principal, ok := recoverPrincipalFromStorage(ctx, kv, principalID)
	require.True(t, ok)
	assert.Equal(t, "nested@example.com", principal.Email)
}

func TestRecoverPrincipal_SkipsCorruptSnapshots(t *testing.T) {
	kv := storage.NewMemory()
	goodID := uuid.New()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, identity.TokenKeyPrefix+uuid.New().String(), `{not json`))
	require.NoError(t, kv.Set(ctx, identity.TokenKeyPrefix+uuid.New().String(), `{"user":{"id":"","email":""}}`))
	require.NoError(t, kv.Set(ctx, identity.TokenKeyPrefix+goodID.String(),
		`{"user":{"id":"`+goodID.String()+`","email":"good@example.com"}}`))

	principal, ok := recoverPrincipalFromStorage(ctx, kv, uuid.Nil)
	require.True(t, ok)
	assert.Equal(t, goodID, principal.ID)
}

func TestRecoverPrincipal_PrefersHintedKey(t *testing.T) {
	kv := storage.NewMemory()
	hinted := uuid.New()
	other := uuid.New()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, identity.TokenKeyPrefix+other.String(),
		`{"user":{"id":"`+other.String()+`","email":"other@example.com"}}`))
	require.NoError(t, kv.Set(ctx, identity.TokenKeyPrefix+hinted.String(),
		`{"user":{"id":"`+hinted.String()+`","email":"hinted@example.com"}}`))

	principal, ok := recoverPrincipalFromStorage(ctx, kv, hinted)
	require.True(t, ok)
	assert.Equal(t, hinted, principal.ID)
}

func TestRecoverPrincipal_EmptyStorage(t *testing.T) {
	_, ok := recoverPrincipalFromStorage(context.Background(), storage.NewMemory(), uuid.New())
	assert.False(t, ok)
}
