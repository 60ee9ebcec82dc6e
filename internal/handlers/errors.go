package handlers

import (
	"errors"
	"strings"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/voxali/salon-admin/internal/database"
	"github.com/voxali/salon-admin/internal/services"
)

// respondServiceError maps service-layer failures onto HTTP responses.
// Business failures from database functions arrive as *database.RPCError.
func respondServiceError(c *drift.Context, err error) {
	var rpcErr *database.RPCError
	if errors.As(err, &rpcErr) {
		if strings.Contains(rpcErr.Message, "not found") {
			c.NotFound(rpcErr.Message)
		} else {
			c.BadRequest(rpcErr.Message)
		}
		return
	}

	switch {
	case errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrClientNotFound),
		errors.Is(err, services.ErrStaffNotFound),
		errors.Is(err, services.ErrCampaignNotFound),
		errors.Is(err, services.ErrServiceNotFound),
		errors.Is(err, services.ErrTenantNotFound):
		c.NotFound(err.Error())
	case errors.Is(err, services.ErrInvalidBookingStatus),
		errors.Is(err, services.ErrInvalidCallOutcome),
		errors.Is(err, services.ErrInvalidWeekday),
		errors.Is(err, services.ErrCampaignNotDraft),
		errors.Is(err, services.ErrCampaignFinalized):
		c.BadRequest(err.Error())
	default:
		c.InternalServerError("internal error")
	}
}
