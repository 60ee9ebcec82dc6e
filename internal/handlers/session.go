package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/impersonation"
	"github.com/voxali/salon-admin/internal/middleware"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/internal/session"
	"github.com/voxali/salon-admin/internal/tenant"
	"github.com/voxali/salon-admin/internal/view"
	"github.com/voxali/salon-admin/pkg/dto"
)

// SessionHandler serves the shell bootstrap payload. It sits behind token
// auth only, not behind the resolve middleware: loading and timed-out states
// must reach the client as layouts, not as errors.
type SessionHandler struct {
	manager  *session.Manager
	resolver *tenant.Resolver
	imp      *impersonation.Controller
}

func NewSessionHandler(manager *session.Manager, resolver *tenant.Resolver, imp *impersonation.Controller) *SessionHandler {
	return &SessionHandler{manager: manager, resolver: resolver, imp: imp}
}

func (h *SessionHandler) Get(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	ctx := context.Background()
	principal := identity.Principal{ID: userID, Email: middleware.GetUserEmail(c)}
	store := h.manager.Bootstrap(ctx, principal)
	snap := store.Snapshot()

	var flag *impersonation.Flag
	if snap.Role == models.RoleSuperAdmin {
		flag, _ = h.imp.Current(ctx, userID)
	}
	impersonating := flag != nil

	resp := dto.SessionResponse{
		Layout:     view.Select(snap, impersonating),
		State:      snap.State.String(),
		Navigation: []view.Entry{},
	}

	if snap.State == session.StateReady {
		resp.Role = snap.Role
		resp.Profile = snap.Profile
		resp.Navigation = view.Navigation(snap.Role, impersonating)
		if snap.Principal != nil {
			resp.User = &dto.UserResponse{ID: snap.Principal.ID, Email: snap.Principal.Email}
		}

		if tenantID, ok := h.resolver.TenantFor(ctx, userID, snap.Profile); ok {
			resp.TenantID = &tenantID
			branding := h.resolver.Branding(ctx, tenantID)
			resp.Branding = &branding
		}

		if flag != nil {
			resp.Impersonation = &dto.ImpersonationResponse{
				TenantID:   flag.TenantID,
				TenantName: flag.TenantName,
			}
		}
	}

	_ = c.JSON(200, resp)
}
