package models

import (
	"time"

	"github.com/google/uuid"
)

type StaffMember struct {
	ID             uuid.UUID `json:"id"`
	TenantID       uuid.UUID `json:"tenant_id"`
	FullName       string    `json:"full_name"`
	Email          *string   `json:"email,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Role           string    `json:"role"`
	Color          *string   `json:"color,omitempty"`
	CommissionRate float64   `json:"commission_rate"`
	Active         bool      `json:"active"`
	BlockedToday   bool      `json:"blocked_today"`
	CreatedAt      time.Time `json:"created_at"`
}

// StaffBoardRow is one line of the staff board: a member plus the figures
// rpc_staff_board computes for the current month.
type StaffBoardRow struct {
	StaffMember
	Bookings   int     `json:"bookings"`
	Revenue    float64 `json:"revenue"`
	Commission float64 `json:"commission"`
}
