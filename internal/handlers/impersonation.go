package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/voxali/salon-admin/internal/impersonation"
	"github.com/voxali/salon-admin/internal/middleware"
	"github.com/voxali/salon-admin/pkg/dto"
)

// ImpersonationHandler is mounted behind the super-admin role gate.
type ImpersonationHandler struct {
	imp     *impersonation.Controller
	tenants TenantAdminServiceInterface
}

func NewImpersonationHandler(imp *impersonation.Controller, tenants TenantAdminServiceInterface) *ImpersonationHandler {
	return &ImpersonationHandler{imp: imp, tenants: tenants}
}

func (h *ImpersonationHandler) Enter(c *drift.Context) {
	var req dto.EnterImpersonationRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	ctx := context.Background()

	t, err := h.tenants.GetTenant(ctx, req.TenantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := h.imp.Enter(ctx, middleware.GetUserID(c), t.ID, t.SalonName); err != nil {
		c.InternalServerError("failed to persist impersonation flag")
		return
	}

	_ = c.JSON(200, dto.ImpersonationResponse{TenantID: t.ID, TenantName: t.SalonName})
}

func (h *ImpersonationHandler) Exit(c *drift.Context) {
	if err := h.imp.Exit(context.Background(), middleware.GetUserID(c)); err != nil {
		c.InternalServerError("failed to clear impersonation flag")
		return
	}
	_ = c.JSON(200, map[string]string{"status": "impersonation ended"})
}
