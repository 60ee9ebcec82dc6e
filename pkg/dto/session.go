package dto

import (
	"github.com/google/uuid"

	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/internal/view"
)

// SessionResponse is everything the client shell needs to render: the layout
// to mount, the resolved role, navigation, branding and the impersonation
// banner.
type SessionResponse struct {
	Layout        view.Layout            `json:"layout"`
	State         string                 `json:"state"`
	Role          models.Role            `json:"role,omitempty"`
	User          *UserResponse          `json:"user,omitempty"`
	Profile       *models.Profile        `json:"profile,omitempty"`
	TenantID      *uuid.UUID             `json:"tenant_id,omitempty"`
	Branding      *models.Branding       `json:"branding,omitempty"`
	Navigation    []view.Entry           `json:"navigation"`
	Impersonation *ImpersonationResponse `json:"impersonation,omitempty"`
}

type ImpersonationResponse struct {
	TenantID   uuid.UUID `json:"tenant_id"`
	TenantName string    `json:"tenant_name"`
}
