package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxali/salon-admin/internal/database"
	"github.com/voxali/salon-admin/internal/models"
)

func setupProfileService(t *testing.T) (*ProfileService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewProfileService(db), mock
}

func profileRows(p *models.Profile) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "user_id", "tenant_id", "role", "email", "full_name", "created_at", "updated_at"}).
		AddRow(p.ID, p.UserID, p.TenantID, p.Role, p.Email, p.FullName, p.CreatedAt, p.UpdatedAt)
}

func TestProfileService_ByID(t *testing.T) {
	svc, mock := setupProfileService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	want := &models.Profile{
		ID:        uuid.New(),
		TenantID:  &tenantID,
		Role:      models.RoleOwner,
		Email:     "owner@example.com",
		FullName:  "Owner One",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id`).
		WithArgs(want.ID).
		WillReturnRows(profileRows(want))

	got, err := svc.ByID(ctx, want.ID)

	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, models.RoleOwner, got.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileService_ByID_MissingRowIsNotAnError(t *testing.T) {
	svc, mock := setupProfileService(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE id`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	got, err := svc.ByID(context.Background(), id)

	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileService_ByUserID(t *testing.T) {
	svc, mock := setupProfileService(t)
	userID := uuid.New()
	want := &models.Profile{
		ID:        uuid.New(),
		UserID:    &userID,
		Role:      models.RoleStaff,
		Email:     "staff@example.com",
		FullName:  "Staff One",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE user_id`).
		WithArgs(userID).
		WillReturnRows(profileRows(want))

	got, err := svc.ByUserID(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, userID, got.BoundPrincipalID())
	assert.NoError(t, mock.ExpectationsWereMet())
}
