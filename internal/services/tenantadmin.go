package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/voxali/salon-admin/internal/database"
	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/models"
)

var ErrTenantNotFound = errors.New("tenant not found")

// TenantAdminService backs the cross-tenant console: the salon list, platform
// totals and salon provisioning. Only super-admin handlers reach it.
type TenantAdminService struct {
	db *database.DB
}

func NewTenantAdminService(db *database.DB) *TenantAdminService {
	return &TenantAdminService{db: db}
}

// TenantListing is one salon plus its headline usage numbers.
type TenantListing struct {
	models.Tenant
	Staff    int `json:"staff"`
	Clients  int `json:"clients"`
	Bookings int `json:"bookings"`
}

// PlatformOverview is the saas dashboard's totals row.
type PlatformOverview struct {
	Tenants       int     `json:"tenants"`
	Bookings30d   int     `json:"bookings_30d"`
	Revenue30d    float64 `json:"revenue_30d"`
	CallsHandled  int     `json:"calls_handled"`
	ActiveClients int     `json:"active_clients"`
}

func (s *TenantAdminService) ListTenants(ctx context.Context) ([]TenantListing, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT t.id, t.name, t.salon_name, t.salon_tagline, t.logo_url, t.owner_name,
			t.created_at, t.updated_at,
			(SELECT COUNT(*) FROM staff WHERE tenant_id = t.id),
			(SELECT COUNT(*) FROM clients WHERE tenant_id = t.id),
			(SELECT COUNT(*) FROM bookings WHERE tenant_id = t.id)
		FROM tenants t
		ORDER BY t.created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []TenantListing
	for rows.Next() {
		var l TenantListing
		if err := rows.Scan(
			&l.ID, &l.Name, &l.SalonName, &l.SalonTagline, &l.LogoURL, &l.OwnerName,
			&l.CreatedAt, &l.UpdatedAt,
			&l.Staff, &l.Clients, &l.Bookings,
		); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (s *TenantAdminService) GetTenant(ctx context.Context, tenantID uuid.UUID) (*models.Tenant, error) {
	var t models.Tenant
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, name, salon_name, salon_tagline, logo_url, owner_name, created_at, updated_at
		FROM tenants WHERE id = $1
	`, tenantID).Scan(
		&t.ID, &t.Name, &t.SalonName, &t.SalonTagline, &t.LogoURL,
		&t.OwnerName, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, ErrTenantNotFound
	}
	return &t, nil
}

func (s *TenantAdminService) Overview(ctx context.Context) (*PlatformOverview, error) {
	var o PlatformOverview
	since := time.Now().AddDate(0, 0, -30)
	err := s.db.Pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM tenants),
			(SELECT COUNT(*) FROM bookings WHERE created_at >= $1),
			(SELECT COALESCE(SUM(total_price), 0) FROM bookings
				WHERE status = 'completed' AND start_time >= $1),
			(SELECT COUNT(*) FROM call_logs WHERE started_at >= $1),
			(SELECT COUNT(DISTINCT client_id) FROM bookings
				WHERE client_id IS NOT NULL AND created_at >= $1)
	`, since).Scan(&o.Tenants, &o.Bookings30d, &o.Revenue30d, &o.CallsHandled, &o.ActiveClients)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateTenantAndOwner provisions a salon, its owner profile and the owner's
// credentials in one transaction inside the database function.
func (s *TenantAdminService) CreateTenantAndOwner(ctx context.Context, salonName, ownerName, ownerEmail, ownerPassword string) (tenantID, profileID uuid.UUID, err error) {
	hash, err := identity.HashPassword(ownerPassword)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	env, err := database.CallRPC(ctx, s.db.Pool, "rpc_create_tenant_and_owner",
		salonName, ownerName, ownerEmail, hash)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	tenantID, err = env.UUID("tenant_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	profileID, err = env.UUID("profile_id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return tenantID, profileID, nil
}
