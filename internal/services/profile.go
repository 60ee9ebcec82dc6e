package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/voxali/salon-admin/internal/database"
	"github.com/voxali/salon-admin/internal/models"
)

type ProfileService struct {
	db *database.DB
}

func NewProfileService(db *database.DB) *ProfileService {
	return &ProfileService{db: db}
}

const profileColumns = `id, user_id, tenant_id, role, email, full_name, created_at, updated_at`

// ByID looks a profile up by primary key. A missing row is (nil, nil); the
// session resolver treats that as "try the next lookup", not as a failure.
func (s *ProfileService) ByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	return s.one(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
}

// ByUserID looks a profile up by the user_id column older schemas bind the
// principal through.
func (s *ProfileService) ByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.one(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID)
}

func (s *ProfileService) ByEmail(ctx context.Context, email string) (*models.Profile, error) {
	return s.one(ctx, `SELECT `+profileColumns+` FROM profiles WHERE email = $1`, email)
}

func (s *ProfileService) one(ctx context.Context, query string, arg any) (*models.Profile, error) {
	var p models.Profile
	err := s.db.Pool.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.UserID, &p.TenantID, &p.Role, &p.Email,
		&p.FullName, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
