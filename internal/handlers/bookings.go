package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"

	"github.com/voxali/salon-admin/internal/middleware"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/pkg/dto"
)

type BookingHandler struct {
	bookings BookingServiceInterface
}

func NewBookingHandler(bookings BookingServiceInterface) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// List returns one day's schedule. The date query param defaults to today.
func (h *BookingHandler) List(c *drift.Context) {
	day := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.BadRequest("date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	bookings, err := h.bookings.ListByDay(context.Background(), middleware.GetTenantID(c), day)
	if err != nil {
		c.InternalServerError("failed to list bookings")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	_ = c.JSON(200, bookings)
}

func (h *BookingHandler) UpdateStatus(c *drift.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		c.BadRequest("invalid booking id")
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if err := h.bookings.UpdateStatus(context.Background(), middleware.GetTenantID(c), bookingID, req.Status); err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"status": req.Status})
}

func (h *BookingHandler) AddWalkIn(c *drift.Context) {
	var req dto.AddWalkInRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.ClientName == "" || req.ServiceID == uuid.Nil || req.StylistID == uuid.Nil {
		c.BadRequest("client_name, service_id and stylist_id are required")
		return
	}
	if req.StartTime.IsZero() {
		req.StartTime = time.Now()
	}

	bookingID, err := h.bookings.AddWalkIn(context.Background(), middleware.GetTenantID(c),
		req.ClientName, req.ClientPhone, req.ServiceID, req.StylistID, req.StartTime)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	_ = c.JSON(201, dto.BookingCreatedResponse{BookingID: bookingID})
}
