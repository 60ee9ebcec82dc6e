package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/voxali/salon-admin/internal/services"
	"github.com/voxali/salon-admin/pkg/dto"
)

// AdminHandler serves the cross-tenant console. Routes are mounted behind
// the super-admin role gate.
type AdminHandler struct {
	tenants TenantAdminServiceInterface
}

func NewAdminHandler(tenants TenantAdminServiceInterface) *AdminHandler {
	return &AdminHandler{tenants: tenants}
}

func (h *AdminHandler) Overview(c *drift.Context) {
	overview, err := h.tenants.Overview(context.Background())
	if err != nil {
		c.InternalServerError("failed to load platform overview")
		return
	}
	_ = c.JSON(200, overview)
}

func (h *AdminHandler) ListTenants(c *drift.Context) {
	listings, err := h.tenants.ListTenants(context.Background())
	if err != nil {
		c.InternalServerError("failed to list salons")
		return
	}
	if listings == nil {
		listings = []services.TenantListing{}
	}
	_ = c.JSON(200, listings)
}

func (h *AdminHandler) GetTenant(c *drift.Context) {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		c.BadRequest("invalid tenant id")
		return
	}

	t, err := h.tenants.GetTenant(context.Background(), tenantID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	_ = c.JSON(200, t)
}

func (h *AdminHandler) CreateTenant(c *drift.Context) {
	var req dto.CreateTenantRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.SalonName == "" || req.OwnerName == "" || req.OwnerEmail == "" {
		c.BadRequest("salon_name, owner_name and owner_email are required")
		return
	}
	if len(req.OwnerPassword) < 8 {
		c.BadRequest("owner_password must be at least 8 characters")
		return
	}

	tenantID, profileID, err := h.tenants.CreateTenantAndOwner(context.Background(),
		req.SalonName, req.OwnerName, req.OwnerEmail, req.OwnerPassword)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(201, dto.TenantCreatedResponse{TenantID: tenantID, ProfileID: profileID})
}
