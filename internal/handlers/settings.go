package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/voxali/salon-admin/internal/middleware"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/pkg/dto"
)

type SettingsHandler struct {
	settings SettingsServiceInterface
}

func NewSettingsHandler(settings SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

func (h *SettingsHandler) Services(c *drift.Context) {
	catalogue, err := h.settings.Services(context.Background(), middleware.GetTenantID(c))
	if err != nil {
		c.InternalServerError("failed to list services")
		return
	}
	if catalogue == nil {
		catalogue = []models.SalonService{}
	}
	_ = c.JSON(200, catalogue)
}

func (h *SettingsHandler) UpsertService(c *drift.Context) {
	var req dto.UpsertServiceRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Name == "" || req.Duration <= 0 || req.Price < 0 {
		c.BadRequest("name, a positive duration and a non-negative price are required")
		return
	}

	serviceID, err := h.settings.UpsertService(context.Background(), middleware.GetTenantID(c),
		req.ServiceID, req.Name, req.Duration, req.Price)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	status := 200
	if req.ServiceID == nil {
		status = 201
	}
	_ = c.JSON(status, dto.ServiceUpsertedResponse{ServiceID: serviceID})
}

func (h *SettingsHandler) SetServiceActive(c *drift.Context) {
	serviceID, err := uuid.Parse(c.Param("serviceId"))
	if err != nil {
		c.BadRequest("invalid service id")
		return
	}

	var req dto.SetActiveRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if err := h.settings.SetServiceActive(context.Background(), middleware.GetTenantID(c), serviceID, req.Active); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"status": "updated"})
}

func (h *SettingsHandler) Hours(c *drift.Context) {
	hours, err := h.settings.Hours(context.Background(), middleware.GetTenantID(c))
	if err != nil {
		c.InternalServerError("failed to load business hours")
		return
	}
	if hours == nil {
		hours = []models.BusinessHours{}
	}
	_ = c.JSON(200, hours)
}

func (h *SettingsHandler) UpdateHours(c *drift.Context) {
	var req dto.UpdateHoursRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if !req.Closed && (req.Open == "" || req.Close == "") {
		c.BadRequest("open and close times are required unless the day is closed")
		return
	}

	if err := h.settings.UpdateHours(context.Background(), middleware.GetTenantID(c),
		req.Weekday, req.Open, req.Close, req.Closed); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"status": "updated"})
}
