package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is one salon's isolated data partition.
type Tenant struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	SalonName    string    `json:"salon_name"`
	SalonTagline string    `json:"salon_tagline"`
	LogoURL      *string   `json:"logo_url,omitempty"`
	OwnerName    string    `json:"owner_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Branding is the tenant subset the dashboard chrome renders.
type Branding struct {
	SalonName    string  `json:"salon_name"`
	SalonTagline string  `json:"salon_tagline"`
	LogoURL      *string `json:"logo_url,omitempty"`
	OwnerName    string  `json:"owner_name"`
}

// DefaultBranding is rendered whenever the tenant row is absent or the read
// fails; branding must never block the dashboard.
func DefaultBranding() Branding {
	return Branding{
		SalonName:    "My Salon",
		SalonTagline: "Salon & Spa",
		OwnerName:    "Owner",
	}
}
