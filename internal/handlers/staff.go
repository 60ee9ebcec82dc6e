package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/voxali/salon-admin/internal/middleware"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/pkg/dto"
)

type StaffHandler struct {
	staff StaffServiceInterface
}

func NewStaffHandler(staff StaffServiceInterface) *StaffHandler {
	return &StaffHandler{staff: staff}
}

func (h *StaffHandler) Board(c *drift.Context) {
	board, err := h.staff.Board(context.Background(), middleware.GetTenantID(c))
	if err != nil {
		c.InternalServerError("failed to load staff board")
		return
	}
	if board == nil {
		board = []models.StaffBoardRow{}
	}
	_ = c.JSON(200, board)
}

func (h *StaffHandler) Add(c *drift.Context) {
	var req dto.AddStaffRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	staffID, err := h.staff.Add(context.Background(), middleware.GetTenantID(c),
		req.Name, req.Email, req.Phone, req.Role, req.Commission)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(201, dto.StaffCreatedResponse{StaffID: staffID})
}

func (h *StaffHandler) UpdateCommission(c *drift.Context) {
	staffID, err := uuid.Parse(c.Param("staffId"))
	if err != nil {
		c.BadRequest("invalid staff id")
		return
	}

	var req dto.UpdateCommissionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Rate < 0 || req.Rate > 100 {
		c.BadRequest("rate must be between 0 and 100")
		return
	}

	if err := h.staff.UpdateCommission(context.Background(), middleware.GetTenantID(c), staffID, req.Rate); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"status": "updated"})
}

func (h *StaffHandler) SetActive(c *drift.Context) {
	staffID, err := uuid.Parse(c.Param("staffId"))
	if err != nil {
		c.BadRequest("invalid staff id")
		return
	}

	var req dto.SetActiveRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if err := h.staff.SetActive(context.Background(), middleware.GetTenantID(c), staffID, req.Active); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"status": "updated"})
}

func (h *StaffHandler) SetBlocked(c *drift.Context) {
	staffID, err := uuid.Parse(c.Param("staffId"))
	if err != nil {
		c.BadRequest("invalid staff id")
		return
	}

	var req dto.SetBlockedRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if err := h.staff.SetBlockedToday(context.Background(), middleware.GetTenantID(c), staffID, req.Blocked); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"status": "updated"})
}

func (h *StaffHandler) CreateLogin(c *drift.Context) {
	staffID, err := uuid.Parse(c.Param("staffId"))
	if err != nil {
		c.BadRequest("invalid staff id")
		return
	}

	var req dto.CreateStaffLoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Email == "" || len(req.Password) < 8 {
		c.BadRequest("email and a password of at least 8 characters are required")
		return
	}

	profileID, err := h.staff.CreateLogin(context.Background(), middleware.GetTenantID(c), staffID, req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(201, dto.StaffLoginCreatedResponse{ProfileID: profileID})
}
