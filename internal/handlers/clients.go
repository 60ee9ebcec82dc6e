package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/voxali/salon-admin/internal/middleware"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/pkg/dto"
)

type ClientHandler struct {
	clients ClientServiceInterface
}

func NewClientHandler(clients ClientServiceInterface) *ClientHandler {
	return &ClientHandler{clients: clients}
}

func (h *ClientHandler) List(c *drift.Context) {
	clients, err := h.clients.List(context.Background(), middleware.GetTenantID(c), c.QueryParam("search"))
	if err != nil {
		c.InternalServerError("failed to list clients")
		return
	}
	if clients == nil {
		clients = []models.Client{}
	}
	_ = c.JSON(200, clients)
}

func (h *ClientHandler) Create(c *drift.Context) {
	var req dto.UpsertClientRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	client, err := h.clients.Create(context.Background(), middleware.GetTenantID(c),
		req.Name, req.Phone, req.Email, req.Notes)
	if err != nil {
		c.InternalServerError("failed to create client")
		return
	}

	_ = c.JSON(201, client)
}

func (h *ClientHandler) Update(c *drift.Context) {
	clientID, err := uuid.Parse(c.Param("clientId"))
	if err != nil {
		c.BadRequest("invalid client id")
		return
	}

	var req dto.UpsertClientRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	if err := h.clients.Update(context.Background(), middleware.GetTenantID(c), clientID,
		req.Name, req.Phone, req.Email, req.Notes); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"status": "updated"})
}

func (h *ClientHandler) Delete(c *drift.Context) {
	clientID, err := uuid.Parse(c.Param("clientId"))
	if err != nil {
		c.BadRequest("invalid client id")
		return
	}

	if err := h.clients.Delete(context.Background(), middleware.GetTenantID(c), clientID); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"status": "deleted"})
}
