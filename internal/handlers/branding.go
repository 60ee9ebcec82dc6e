package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/voxali/salon-admin/internal/middleware"
	"github.com/voxali/salon-admin/internal/tenant"
)

type BrandingHandler struct {
	resolver *tenant.Resolver
}

func NewBrandingHandler(resolver *tenant.Resolver) *BrandingHandler {
	return &BrandingHandler{resolver: resolver}
}

func (h *BrandingHandler) Get(c *drift.Context) {
	branding := h.resolver.Branding(context.Background(), middleware.GetTenantID(c))
	_ = c.JSON(200, branding)
}

func (h *BrandingHandler) Update(c *drift.Context) {
	var patch tenant.BrandingPatch
	if err := c.BindJSON(&patch); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	branding, err := h.resolver.UpdateBranding(context.Background(), middleware.GetTenantID(c), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, branding)
}
