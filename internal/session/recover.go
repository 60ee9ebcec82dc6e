package session

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/storage"
)

// recoverPrincipalFromStorage scans persisted session snapshots when the
// provider could not produce a session in time. It prefers the snapshot keyed
// by the hinted principal, then falls back to any parseable snapshot under
// the token prefix. Snapshots store the principal either at the top level or
// nested under a current-session wrapper, depending on provider version.
func recoverPrincipalFromStorage(ctx context.Context, kv storage.Store, hint uuid.UUID) (identity.Principal, bool) {
	if hint != uuid.Nil {
		if p, ok := parseSnapshot(ctx, kv, identity.TokenKeyPrefix+hint.String()); ok {
			return p, true
		}
	}

	keys, err := kv.Keys(ctx, identity.TokenKeyPrefix)
	if err != nil {
		return identity.Principal{}, false
	}
	for _, key := range keys {
		if p, ok := parseSnapshot(ctx, kv, key); ok {
			return p, true
		}
	}
	return identity.Principal{}, false
}

func parseSnapshot(ctx context.Context, kv storage.Store, key string) (identity.Principal, bool) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return identity.Principal{}, false
	}

	var snap struct {
		User           identity.Principal `json:"user"`
		CurrentSession struct {
			User identity.Principal `json:"user"`
		} `json:"currentSession"`
	}
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return identity.Principal{}, false
	}

	principal := snap.User
	if principal.ID == uuid.Nil || principal.Email == "" {
		principal = snap.CurrentSession.User
	}
	if principal.ID == uuid.Nil || principal.Email == "" {
		return identity.Principal{}, false
	}
	return principal, true
}
