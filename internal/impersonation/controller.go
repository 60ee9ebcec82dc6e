// Package impersonation lets a super admin assume a tenant's dashboard view.
// The flag is three durable KV keys per admin principal so it survives
// reloads and is only removed by an explicit exit or logout.
package impersonation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/voxali/salon-admin/internal/storage"
)

const (
	keyTenantSuffix = ":tenant"
	keyNameSuffix   = ":name"
	keyActiveSuffix = ":active"
)

// Flag is the persisted impersonation override. A present, active flag wins
// over every other tenant-resolution source.
type Flag struct {
	TenantID   uuid.UUID `json:"tenant_id"`
	TenantName string    `json:"tenant_name"`
	Active     bool      `json:"active"`
}

type Controller struct {
	kv storage.Store
}

func NewController(kv storage.Store) *Controller {
	return &Controller{kv: kv}
}

func key(adminID uuid.UUID, suffix string) string {
	return "impersonate:" + adminID.String() + suffix
}

func (c *Controller) Enter(ctx context.Context, adminID, tenantID uuid.UUID, tenantName string) error {
	if tenantID == uuid.Nil {
		return fmt.Errorf("impersonation target tenant id is empty")
	}
	if err := c.kv.Set(ctx, key(adminID, keyTenantSuffix), tenantID.String()); err != nil {
		return err
	}
	if tenantName != "" {
		if err := c.kv.Set(ctx, key(adminID, keyNameSuffix), tenantName); err != nil {
			return err
		}
	}
	return c.kv.Set(ctx, key(adminID, keyActiveSuffix), "true")
}

func (c *Controller) Exit(ctx context.Context, adminID uuid.UUID) error {
	return c.kv.Delete(ctx,
		key(adminID, keyTenantSuffix),
		key(adminID, keyNameSuffix),
		key(adminID, keyActiveSuffix),
	)
}

// Clear removes the flag during logout. Same operation as Exit, named for
// the call site: session teardown must never leave a stale flag behind.
func (c *Controller) Clear(ctx context.Context, adminID uuid.UUID) error {
	return c.Exit(ctx, adminID)
}

// Current returns the active flag for an admin, or nil when not
// impersonating.
func (c *Controller) Current(ctx context.Context, adminID uuid.UUID) (*Flag, error) {
	active, err := c.kv.Get(ctx, key(adminID, keyActiveSuffix))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if active != "true" {
		return nil, nil
	}

	rawTenant, err := c.kv.Get(ctx, key(adminID, keyTenantSuffix))
	if err != nil {
		// Marker without a target is a half-written flag; treat as absent.
		return nil, nil
	}
	tenantID, err := uuid.Parse(rawTenant)
	if err != nil {
		return nil, nil
	}

	name, err := c.kv.Get(ctx, key(adminID, keyNameSuffix))
	if err != nil {
		name = ""
	}

	return &Flag{TenantID: tenantID, TenantName: name, Active: true}, nil
}
