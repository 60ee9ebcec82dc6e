package models

import (
	"time"

	"github.com/google/uuid"
)

// SalonService is a bookable service in the salon's catalogue.
type SalonService struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Name        string    `json:"name"`
	DurationMin int       `json:"duration"`
	Price       float64   `json:"price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// BusinessHours is one weekday's opening window. Weekday follows time.Weekday
// numbering (0 = Sunday).
type BusinessHours struct {
	TenantID  uuid.UUID `json:"tenant_id"`
	Weekday   int       `json:"weekday"`
	OpenTime  string    `json:"open_time"`
	CloseTime string    `json:"close_time"`
	Closed    bool      `json:"closed"`
}
