package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/voxali/salon-admin/internal/database"
	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/models"
)

var ErrStaffNotFound = errors.New("staff member not found")

type StaffService struct {
	db *database.DB
}

func NewStaffService(db *database.DB) *StaffService {
	return &StaffService{db: db}
}

// Board returns every staff member with the current month's booking count,
// revenue and commission figures.
func (s *StaffService) Board(ctx context.Context, tenantID uuid.UUID) ([]models.StaffBoardRow, error) {
	rows, err := s.db.Pool.Query(ctx, `SELECT * FROM rpc_staff_board($1)`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var board []models.StaffBoardRow
	for rows.Next() {
		var r models.StaffBoardRow
		if err := rows.Scan(
			&r.ID, &r.FullName, &r.Role, &r.Color,
			&r.CommissionRate, &r.Active, &r.BlockedToday,
			&r.Bookings, &r.Revenue, &r.Commission,
		); err != nil {
			return nil, err
		}
		r.TenantID = tenantID
		board = append(board, r)
	}
	return board, rows.Err()
}

func (s *StaffService) Add(ctx context.Context, tenantID uuid.UUID, name string, email, phone, role *string, commission *float64) (uuid.UUID, error) {
	env, err := database.CallRPC(ctx, s.db.Pool, "rpc_add_staff",
		tenantID, name, email, phone, role, commission)
	if err != nil {
		return uuid.Nil, err
	}
	return env.UUID("staff_id")
}

func (s *StaffService) UpdateCommission(ctx context.Context, tenantID, staffID uuid.UUID, rate float64) error {
	_, err := database.CallRPC(ctx, s.db.Pool, "rpc_update_commission", tenantID, staffID, rate)
	return err
}

func (s *StaffService) SetActive(ctx context.Context, tenantID, staffID uuid.UUID, active bool) error {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE staff SET active = $1 WHERE id = $2 AND tenant_id = $3
	`, active, staffID, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStaffNotFound
	}
	return nil
}

// SetBlockedToday marks a stylist unavailable for the rest of the day. The
// flag is reset by the nightly rollover job.
func (s *StaffService) SetBlockedToday(ctx context.Context, tenantID, staffID uuid.UUID, blocked bool) error {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE staff SET blocked_today = $1 WHERE id = $2 AND tenant_id = $3
	`, blocked, staffID, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStaffNotFound
	}
	return nil
}

// CreateLogin gives an existing staff member dashboard access with the staff
// role. The password is hashed here so plaintext never reaches the database
// layer.
func (s *StaffService) CreateLogin(ctx context.Context, tenantID, staffID uuid.UUID, email, password string) (uuid.UUID, error) {
	hash, err := identity.HashPassword(password)
	if err != nil {
		return uuid.Nil, err
	}
	env, err := database.CallRPC(ctx, s.db.Pool, "rpc_create_staff_login",
		tenantID, staffID, email, hash)
	if err != nil {
		return uuid.Nil, err
	}
	return env.UUID("profile_id")
}
