package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile binds an authenticated principal to a role and a tenant. Rows are
// created server-side when a tenant or a staff login is created; the API
// never lets clients write them directly.
//
// Depending on schema version the identifying column is either id (primary
// key shared with the auth principal) or user_id. Both are kept so lookups
// can try one and fall back to the other.
type Profile struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	TenantID  *uuid.UUID `json:"tenant_id,omitempty"`
	Role      Role       `json:"role"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BoundPrincipalID is the principal this profile belongs to: user_id when the
// schema carries it, the primary key otherwise.
func (p *Profile) BoundPrincipalID() uuid.UUID {
	if p.UserID != nil {
		return *p.UserID
	}
	return p.ID
}
