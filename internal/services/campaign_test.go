package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxali/salon-admin/internal/database"
)

func setupCampaignService(t *testing.T) (*CampaignService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	return NewCampaignService(db), mock
}

func TestCampaignService_Schedule(t *testing.T) {
	svc, mock := setupCampaignService(t)
	tenantID := uuid.New()
	campaignID := uuid.New()
	at := time.Now().Add(24 * time.Hour)

	mock.ExpectExec(`UPDATE marketing_campaigns SET status = 'scheduled'`).
		WithArgs(at, campaignID, tenantID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := svc.Schedule(context.Background(), tenantID, campaignID, at)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignService_Schedule_NotDraft(t *testing.T) {
	svc, mock := setupCampaignService(t)
	tenantID := uuid.New()
	campaignID := uuid.New()
	at := time.Now().Add(24 * time.Hour)

	mock.ExpectExec(`UPDATE marketing_campaigns SET status = 'scheduled'`).
		WithArgs(at, campaignID, tenantID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(campaignID, tenantID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	err := svc.Schedule(context.Background(), tenantID, campaignID, at)

	assert.ErrorIs(t, err, ErrCampaignNotDraft)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignService_Schedule_NotFound(t *testing.T) {
	svc, mock := setupCampaignService(t)
	tenantID := uuid.New()
	campaignID := uuid.New()
	at := time.Now().Add(24 * time.Hour)

	mock.ExpectExec(`UPDATE marketing_campaigns SET status = 'scheduled'`).
		WithArgs(at, campaignID, tenantID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(campaignID, tenantID).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	err := svc.Schedule(context.Background(), tenantID, campaignID, at)

	assert.ErrorIs(t, err, ErrCampaignNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignService_MarkSent(t *testing.T) {
	svc, mock := setupCampaignService(t)
	tenantID := uuid.New()
	campaignID := uuid.New()

	mock.ExpectExec(`UPDATE marketing_campaigns SET status = 'sent'`).
		WithArgs(campaignID, tenantID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := svc.MarkSent(context.Background(), tenantID, campaignID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
