package handlers

import (
	"context"
	"crypto/subtle"
	"strconv"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/voxali/salon-admin/internal/middleware"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/pkg/dto"
)

type CallLogHandler struct {
	calls         CallLogServiceInterface
	webhookSecret string
}

func NewCallLogHandler(calls CallLogServiceInterface, webhookSecret string) *CallLogHandler {
	return &CallLogHandler{calls: calls, webhookSecret: webhookSecret}
}

func (h *CallLogHandler) List(c *drift.Context) {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	calls, err := h.calls.List(context.Background(), middleware.GetTenantID(c), c.QueryParam("outcome"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if calls == nil {
		calls = []models.CallLog{}
	}
	_ = c.JSON(200, calls)
}

// Webhook ingests a call record pushed by the voice receptionist. It is a
// public route authenticated by the shared secret header, not by a user
// token; the tenant comes from the payload.
func (h *CallLogHandler) Webhook(c *drift.Context) {
	if h.webhookSecret == "" {
		c.NotFound("webhook disabled")
		return
	}
	provided := c.GetHeader("X-Webhook-Secret")
	if subtle.ConstantTimeCompare([]byte(provided), []byte(h.webhookSecret)) != 1 {
		c.Unauthorized("invalid webhook secret")
		return
	}

	var req dto.IngestCallRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.TenantID == uuid.Nil || req.CallerPhone == "" {
		c.BadRequest("tenant_id and caller_phone are required")
		return
	}

	call, err := h.calls.Ingest(context.Background(), req.TenantID,
		req.CallerName, req.CallerPhone, req.Outcome, req.DurationSec,
		req.Transcript, req.BookingID, req.StartedAt)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(201, call)
}
