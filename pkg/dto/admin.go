package dto

import "github.com/google/uuid"

type CreateTenantRequest struct {
	SalonName     string `json:"salon_name"`
	OwnerName     string `json:"owner_name"`
	OwnerEmail    string `json:"owner_email"`
	OwnerPassword string `json:"owner_password"`
}

type TenantCreatedResponse struct {
	TenantID  uuid.UUID `json:"tenant_id"`
	ProfileID uuid.UUID `json:"profile_id"`
}

type EnterImpersonationRequest struct {
	TenantID uuid.UUID `json:"tenant_id"`
}
