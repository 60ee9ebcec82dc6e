package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
	BookingStatusNoShow    = "no_show"
)

type Booking struct {
	ID          uuid.UUID  `json:"id"`
	TenantID    uuid.UUID  `json:"tenant_id"`
	ClientID    *uuid.UUID `json:"client_id,omitempty"`
	ClientName  string     `json:"client_name"`
	ClientPhone *string    `json:"client_phone,omitempty"`
	StaffID     uuid.UUID  `json:"staff_id"`
	ServiceID   uuid.UUID  `json:"service_id"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	Status      string     `json:"status"`
	TotalPrice  float64    `json:"total_price"`
	Source      string     `json:"source"`
	CreatedAt   time.Time  `json:"created_at"`

	Staff   *StaffMember  `json:"staff,omitempty"`
	Service *SalonService `json:"service,omitempty"`
}
