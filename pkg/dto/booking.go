package dto

import (
	"time"

	"github.com/google/uuid"
)

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

type AddWalkInRequest struct {
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	ServiceID   uuid.UUID `json:"service_id"`
	StylistID   uuid.UUID `json:"stylist_id"`
	StartTime   time.Time `json:"start_time"`
}

type BookingCreatedResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
}
