package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/voxali/salon-admin/internal/middleware"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/pkg/dto"
)

type CampaignHandler struct {
	campaigns CampaignServiceInterface
}

func NewCampaignHandler(campaigns CampaignServiceInterface) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns}
}

func (h *CampaignHandler) List(c *drift.Context) {
	campaigns, err := h.campaigns.List(context.Background(), middleware.GetTenantID(c))
	if err != nil {
		c.InternalServerError("failed to list campaigns")
		return
	}
	if campaigns == nil {
		campaigns = []models.Campaign{}
	}
	_ = c.JSON(200, campaigns)
}

func (h *CampaignHandler) Create(c *drift.Context) {
	var req dto.CreateCampaignRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Name == "" || req.Message == "" {
		c.BadRequest("name and message are required")
		return
	}
	if req.Channel != "sms" && req.Channel != "email" {
		c.BadRequest("channel must be sms or email")
		return
	}

	campaign, err := h.campaigns.Create(context.Background(), middleware.GetTenantID(c),
		req.Name, req.Channel, req.Message)
	if err != nil {
		c.InternalServerError("failed to create campaign")
		return
	}

	_ = c.JSON(201, campaign)
}

func (h *CampaignHandler) Schedule(c *drift.Context) {
	campaignID, err := uuid.Parse(c.Param("campaignId"))
	if err != nil {
		c.BadRequest("invalid campaign id")
		return
	}

	var req dto.ScheduleCampaignRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.ScheduledAt.IsZero() {
		c.BadRequest("scheduled_at is required")
		return
	}

	if err := h.campaigns.Schedule(context.Background(), middleware.GetTenantID(c), campaignID, req.ScheduledAt); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"status": "scheduled"})
}

func (h *CampaignHandler) Send(c *drift.Context) {
	campaignID, err := uuid.Parse(c.Param("campaignId"))
	if err != nil {
		c.BadRequest("invalid campaign id")
		return
	}

	if err := h.campaigns.MarkSent(context.Background(), middleware.GetTenantID(c), campaignID); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"status": "sent"})
}

func (h *CampaignHandler) Delete(c *drift.Context) {
	campaignID, err := uuid.Parse(c.Param("campaignId"))
	if err != nil {
		c.BadRequest("invalid campaign id")
		return
	}

	if err := h.campaigns.Delete(context.Background(), middleware.GetTenantID(c), campaignID); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"status": "deleted"})
}
