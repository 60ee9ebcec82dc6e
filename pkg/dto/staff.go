package dto

import "github.com/google/uuid"

type AddStaffRequest struct {
	Name       string   `json:"name"`
	Email      *string  `json:"email,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	Role       *string  `json:"role,omitempty"`
	Commission *float64 `json:"commission,omitempty"`
}

type StaffCreatedResponse struct {
	StaffID uuid.UUID `json:"staff_id"`
}

type UpdateCommissionRequest struct {
	Rate float64 `json:"rate"`
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

type SetBlockedRequest struct {
	Blocked bool `json:"blocked"`
}

type CreateStaffLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type StaffLoginCreatedResponse struct {
	ProfileID uuid.UUID `json:"profile_id"`
}
