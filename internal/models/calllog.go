package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CallOutcomeBooked    = "booked"
	CallOutcomeInquiry   = "inquiry"
	CallOutcomeMissed    = "missed"
	CallOutcomeVoicemail = "voicemail"
)

// CallLog is one call handled by the AI voice receptionist.
type CallLog struct {
	ID          uuid.UUID  `json:"id"`
	TenantID    uuid.UUID  `json:"tenant_id"`
	CallerName  *string    `json:"caller_name,omitempty"`
	CallerPhone string     `json:"caller_phone"`
	Outcome     string     `json:"outcome"`
	DurationSec int        `json:"duration_sec"`
	Transcript  *string    `json:"transcript,omitempty"`
	BookingID   *uuid.UUID `json:"booking_id,omitempty"`
	StartedAt   time.Time  `json:"started_at"`
	CreatedAt   time.Time  `json:"created_at"`
}
