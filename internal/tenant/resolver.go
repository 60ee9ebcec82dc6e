// Package tenant decides which salon's data a request sees and serves that
// tenant's branding.
package tenant

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voxali/salon-admin/internal/database"
	"github.com/voxali/salon-admin/internal/impersonation"
	"github.com/voxali/salon-admin/internal/models"
)

// ResolveTenantID applies the tenant-source priority: an active impersonation
// flag wins over everything, then the profile's tenant, then the super-admin
// global view (no tenant), then the configured fallback. The bool reports
// whether a tenant applies at all; false for a non-impersonating super admin.
func ResolveTenantID(flag *impersonation.Flag, profile *models.Profile, fallback uuid.UUID) (uuid.UUID, bool) {
	if flag != nil && flag.Active && flag.TenantID != uuid.Nil {
		return flag.TenantID, true
	}
	if profile != nil {
		if profile.TenantID != nil && *profile.TenantID != uuid.Nil {
			return *profile.TenantID, true
		}
		if profile.Role == models.RoleSuperAdmin {
			return uuid.Nil, false
		}
	}
	if fallback != uuid.Nil {
		return fallback, true
	}
	return uuid.Nil, false
}

// Resolver combines the priority rule with the impersonation flag store and
// the tenants table.
type Resolver struct {
	db       *database.DB
	imp      *impersonation.Controller
	fallback uuid.UUID
	log      *zap.Logger
}

func NewResolver(db *database.DB, imp *impersonation.Controller, fallback uuid.UUID, log *zap.Logger) *Resolver {
	return &Resolver{db: db, imp: imp, fallback: fallback, log: log}
}

// TenantFor resolves the effective tenant for a principal. The impersonation
// flag is only consulted for super admins; for everyone else the profile and
// fallback decide.
func (r *Resolver) TenantFor(ctx context.Context, principalID uuid.UUID, profile *models.Profile) (uuid.UUID, bool) {
	var flag *impersonation.Flag
	if profile != nil && profile.Role == models.RoleSuperAdmin {
		var err error
		flag, err = r.imp.Current(ctx, principalID)
		if err != nil {
			r.log.Warn("failed to read impersonation flag", zap.Error(err))
			flag = nil
		}
	}
	return ResolveTenantID(flag, profile, r.fallback)
}

// Branding reads a tenant's dashboard chrome. Any failure, including an
// absent tenant row, yields the defaults: branding never blocks rendering.
func (r *Resolver) Branding(ctx context.Context, tenantID uuid.UUID) models.Branding {
	if tenantID == uuid.Nil {
		return models.DefaultBranding()
	}

	var b models.Branding
	err := r.db.Pool.QueryRow(ctx, `
		SELECT salon_name, salon_tagline, logo_url, owner_name
		FROM tenants WHERE id = $1
	`, tenantID).Scan(&b.SalonName, &b.SalonTagline, &b.LogoURL, &b.OwnerName)
	if err != nil {
		r.log.Warn("branding read failed, serving defaults",
			zap.String("tenant_id", tenantID.String()),
			zap.Error(err),
		)
		return models.DefaultBranding()
	}
	return b
}

// BrandingPatch carries only the fields the caller wants to change; nil
// fields keep the stored value.
type BrandingPatch struct {
	SalonName    *string `json:"salon_name,omitempty"`
	SalonTagline *string `json:"salon_tagline,omitempty"`
	LogoURL      *string `json:"logo_url,omitempty"`
	OwnerName    *string `json:"owner_name,omitempty"`
}

// UpdateBranding applies a partial branding update and returns the stored
// result.
func (r *Resolver) UpdateBranding(ctx context.Context, tenantID uuid.UUID, patch BrandingPatch) (models.Branding, error) {
	_, err := database.CallRPC(ctx, r.db.Pool, "rpc_update_branding",
		tenantID, patch.SalonName, patch.SalonTagline, patch.LogoURL, patch.OwnerName)
	if err != nil {
		return models.Branding{}, err
	}
	return r.Branding(ctx, tenantID), nil
}
