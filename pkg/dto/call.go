package dto

import (
	"time"

	"github.com/google/uuid"
)

// IngestCallRequest is the payload the voice-receptionist webhook posts after
// each call. TenantID routes the call; the shared secret header authenticates
// it.
type IngestCallRequest struct {
	TenantID    uuid.UUID  `json:"tenant_id"`
	CallerName  *string    `json:"caller_name,omitempty"`
	CallerPhone string     `json:"caller_phone"`
	Outcome     string     `json:"outcome"`
	DurationSec int        `json:"duration_sec"`
	Transcript  *string    `json:"transcript,omitempty"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	StartedAt   time.Time  `json:"started_at,omitempty"`
}
