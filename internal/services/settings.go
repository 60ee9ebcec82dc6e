package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/voxali/salon-admin/internal/database"
	"github.com/voxali/salon-admin/internal/models"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidWeekday  = errors.New("weekday must be between 0 and 6")
)

// SettingsService covers the settings screen: the service catalogue and the
// weekly opening hours.
type SettingsService struct {
	db *database.DB
}

func NewSettingsService(db *database.DB) *SettingsService {
	return &SettingsService{db: db}
}

func (s *SettingsService) Services(ctx context.Context, tenantID uuid.UUID) ([]models.SalonService, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, tenant_id, name, duration, price, active, created_at
		FROM services WHERE tenant_id = $1
		ORDER BY name
	`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var catalogue []models.SalonService
	for rows.Next() {
		var sv models.SalonService
		if err := rows.Scan(
			&sv.ID, &sv.TenantID, &sv.Name, &sv.DurationMin,
			&sv.Price, &sv.Active, &sv.CreatedAt,
		); err != nil {
			return nil, err
		}
		catalogue = append(catalogue, sv)
	}
	return catalogue, rows.Err()
}

// UpsertService creates or edits a catalogue entry. A nil serviceID creates.
func (s *SettingsService) UpsertService(ctx context.Context, tenantID uuid.UUID, serviceID *uuid.UUID, name string, durationMin int, price float64) (uuid.UUID, error) {
	env, err := database.CallRPC(ctx, s.db.Pool, "rpc_upsert_service",
		tenantID, serviceID, name, durationMin, price)
	if err != nil {
		return uuid.Nil, err
	}
	return env.UUID("service_id")
}

func (s *SettingsService) SetServiceActive(ctx context.Context, tenantID, serviceID uuid.UUID, active bool) error {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE services SET active = $1 WHERE id = $2 AND tenant_id = $3
	`, active, serviceID, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrServiceNotFound
	}
	return nil
}

// Hours returns the weekly schedule. Missing weekdays simply have no row;
// the client renders those as closed.
func (s *SettingsService) Hours(ctx context.Context, tenantID uuid.UUID) ([]models.BusinessHours, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT tenant_id, weekday, open_time, close_time, closed
		FROM business_hours WHERE tenant_id = $1
		ORDER BY weekday
	`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hours []models.BusinessHours
	for rows.Next() {
		var h models.BusinessHours
		if err := rows.Scan(&h.TenantID, &h.Weekday, &h.OpenTime, &h.CloseTime, &h.Closed); err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}
	return hours, rows.Err()
}

func (s *SettingsService) UpdateHours(ctx context.Context, tenantID uuid.UUID, weekday int, open, close string, closed bool) error {
	if weekday < 0 || weekday > 6 {
		return ErrInvalidWeekday
	}
	_, err := database.CallRPC(ctx, s.db.Pool, "rpc_update_hours",
		tenantID, weekday, open, close, closed)
	return err
}
