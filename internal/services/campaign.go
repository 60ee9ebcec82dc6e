package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/voxali/salon-admin/internal/database"
	"github.com/voxali/salon-admin/internal/models"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrCampaignNotDraft  = errors.New("only draft campaigns can be scheduled")
	ErrCampaignFinalized = errors.New("campaign has already been sent")
)

type CampaignService struct {
	db *database.DB
}

func NewCampaignService(db *database.DB) *CampaignService {
	return &CampaignService{db: db}
}

const campaignColumns = `id, tenant_id, name, channel, message, status, audience, scheduled_at, sent_at, created_at`

func (s *CampaignService) List(ctx context.Context, tenantID uuid.UUID) ([]models.Campaign, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+campaignColumns+` FROM marketing_campaigns
		WHERE tenant_id = $1 ORDER BY created_at DESC
	`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := scanCampaign(rows.Scan, &c); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// Create stores a draft. The audience snapshot is the tenant's current client
// count; it is frozen at send time, not here.
func (s *CampaignService) Create(ctx context.Context, tenantID uuid.UUID, name, channel, message string) (*models.Campaign, error) {
	var c models.Campaign
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO marketing_campaigns (tenant_id, name, channel, message, status, audience)
		VALUES ($1, $2, $3, $4, 'draft',
			(SELECT COUNT(*) FROM clients WHERE tenant_id = $1))
		RETURNING `+campaignColumns+`
	`, tenantID, name, channel, message).Scan(scanCampaignArgs(&c)...)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CampaignService) Schedule(ctx context.Context, tenantID, campaignID uuid.UUID, at time.Time) error {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE marketing_campaigns SET status = 'scheduled', scheduled_at = $1
		WHERE id = $2 AND tenant_id = $3 AND status = 'draft'
	`, at, campaignID, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return s.classifyMiss(ctx, tenantID, campaignID, ErrCampaignNotDraft)
	}
	return nil
}

// MarkSent finalizes a campaign and freezes its audience count.
func (s *CampaignService) MarkSent(ctx context.Context, tenantID, campaignID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE marketing_campaigns SET status = 'sent', sent_at = NOW(),
			audience = (SELECT COUNT(*) FROM clients WHERE tenant_id = $2)
		WHERE id = $1 AND tenant_id = $2 AND status <> 'sent'
	`, campaignID, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return s.classifyMiss(ctx, tenantID, campaignID, ErrCampaignFinalized)
	}
	return nil
}

func (s *CampaignService) Delete(ctx context.Context, tenantID, campaignID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `
		DELETE FROM marketing_campaigns
		WHERE id = $1 AND tenant_id = $2 AND status <> 'sent'
	`, campaignID, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return s.classifyMiss(ctx, tenantID, campaignID, ErrCampaignFinalized)
	}
	return nil
}

// classifyMiss distinguishes "no such campaign" from "wrong state" after a
// guarded update touched zero rows.
func (s *CampaignService) classifyMiss(ctx context.Context, tenantID, campaignID uuid.UUID, stateErr error) error {
	var exists bool
	err := s.db.Pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM marketing_campaigns WHERE id = $1 AND tenant_id = $2)
	`, campaignID, tenantID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCampaignNotFound
	}
	return stateErr
}

func scanCampaign(scan func(...any) error, c *models.Campaign) error {
	return scan(scanCampaignArgs(c)...)
}

func scanCampaignArgs(c *models.Campaign) []any {
	return []any{
		&c.ID, &c.TenantID, &c.Name, &c.Channel, &c.Message, &c.Status,
		&c.Audience, &c.ScheduledAt, &c.SentAt, &c.CreatedAt,
	}
}
