package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/voxali/salon-admin/internal/database"
	"github.com/voxali/salon-admin/internal/models"
)

var ErrInvalidCallOutcome = errors.New("invalid call outcome")

type CallLogService struct {
	db *database.DB
}

func NewCallLogService(db *database.DB) *CallLogService {
	return &CallLogService{db: db}
}

const callLogColumns = `id, tenant_id, caller_name, caller_phone, outcome, duration_sec, transcript, booking_id, started_at, created_at`

// List returns recent calls, newest first. An empty outcome returns all of
// them.
func (s *CallLogService) List(ctx context.Context, tenantID uuid.UUID, outcome string, limit int) ([]models.CallLog, error) {
	if outcome != "" {
		if _, ok := validOutcome(outcome); !ok {
			return nil, ErrInvalidCallOutcome
		}
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+callLogColumns+` FROM call_logs
		WHERE tenant_id = $1 AND ($2 = '' OR outcome = $2)
		ORDER BY started_at DESC
		LIMIT $3
	`, tenantID, outcome, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calls []models.CallLog
	for rows.Next() {
		var c models.CallLog
		if err := rows.Scan(
			&c.ID, &c.TenantID, &c.CallerName, &c.CallerPhone, &c.Outcome,
			&c.DurationSec, &c.Transcript, &c.BookingID, &c.StartedAt, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		calls = append(calls, c)
	}
	return calls, rows.Err()
}

// Ingest records a call pushed by the voice-receptionist webhook. A zero
// startedAt means the call just ended.
func (s *CallLogService) Ingest(ctx context.Context, tenantID uuid.UUID, callerName *string, callerPhone, outcome string, durationSec int, transcript *string, bookingID *uuid.UUID, startedAt time.Time) (*models.CallLog, error) {
	normalized, ok := validOutcome(outcome)
	if !ok {
		return nil, ErrInvalidCallOutcome
	}
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	var c models.CallLog
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO call_logs (tenant_id, caller_name, caller_phone, outcome, duration_sec, transcript, booking_id, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+callLogColumns+`
	`, tenantID, callerName, callerPhone, normalized, durationSec, transcript, bookingID, startedAt).Scan(
		&c.ID, &c.TenantID, &c.CallerName, &c.CallerPhone, &c.Outcome,
		&c.DurationSec, &c.Transcript, &c.BookingID, &c.StartedAt, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func validOutcome(outcome string) (string, bool) {
	switch outcome {
	case models.CallOutcomeBooked, models.CallOutcomeInquiry,
		models.CallOutcomeMissed, models.CallOutcomeVoicemail:
		return outcome, true
	}
	return "", false
}
