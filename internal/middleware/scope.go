package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/internal/session"
	"github.com/voxali/salon-admin/internal/tenant"
)

const (
	SnapshotKey = "session_snapshot"
	RoleKey     = "role"
	TenantIDKey = "tenant_id"
)

// Resolve bootstraps the caller's session store and stashes its snapshot.
// Requests arriving while resolution is still running or after it timed out
// are turned away here; handlers behind this middleware always see a ready
// session.
func Resolve(manager *session.Manager) drift.HandlerFunc {
	return func(c *drift.Context) {
		principal := identity.Principal{ID: GetUserID(c), Email: GetUserEmail(c)}
		if principal.ID == uuid.Nil {
			c.Unauthorized("not authenticated")
			return
		}

		store := manager.Bootstrap(context.Background(), principal)
		snap := store.Snapshot()

		switch {
		case snap.Loading:
			c.JSON(503, map[string]string{"error": "session still resolving, retry shortly"})
			return
		case snap.TimedOut:
			c.JSON(503, map[string]string{"error": "session resolution failed, clear session and sign in again"})
			return
		case snap.Principal == nil || snap.Role == "":
			c.Unauthorized("no active session")
			return
		}

		c.Set(SnapshotKey, snap)
		c.Set(RoleKey, snap.Role)
		c.Next()
	}
}

// TenantScope resolves the effective tenant for the request. Non-impersonating
// super admins carry no tenant and are rejected from tenant-scoped routes.
func TenantScope(resolver *tenant.Resolver) drift.HandlerFunc {
	return func(c *drift.Context) {
		snap := GetSnapshot(c)
		if snap.Principal == nil {
			c.Unauthorized("no active session")
			return
		}

		tenantID, ok := resolver.TenantFor(context.Background(), snap.Principal.ID, snap.Profile)
		if !ok {
			c.Forbidden("no tenant in scope; impersonate a salon first")
			return
		}

		c.Set(TenantIDKey, tenantID)
		c.Next()
	}
}

// RequireRole gates a route group to an allow-list of roles.
func RequireRole(roles ...models.Role) drift.HandlerFunc {
	return func(c *drift.Context) {
		role := GetRole(c)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.Forbidden("insufficient role")
	}
}

func GetSnapshot(c *drift.Context) session.Snapshot {
	if v, ok := c.Get(SnapshotKey); ok {
		if snap, ok := v.(session.Snapshot); ok {
			return snap
		}
	}
	return session.Snapshot{}
}

func GetRole(c *drift.Context) models.Role {
	if v, ok := c.Get(RoleKey); ok {
		if role, ok := v.(models.Role); ok {
			return role
		}
	}
	return ""
}

func GetTenantID(c *drift.Context) uuid.UUID {
	if v, ok := c.Get(TenantIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
