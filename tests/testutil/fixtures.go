package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/voxali/salon-admin/internal/database"
	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/models"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateTenant creates a test salon with default branding
func (f *Fixtures) CreateTenant(t *testing.T) *models.Tenant {
	t.Helper()
	f.counter++

	tenant := &models.Tenant{
		Name:         fmt.Sprintf("Salon %d", f.counter),
		SalonName:    fmt.Sprintf("Salon %d", f.counter),
		SalonTagline: "Salon & Spa",
		OwnerName:    fmt.Sprintf("Owner %d", f.counter),
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO tenants (name, salon_name, salon_tagline, owner_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, tenant.Name, tenant.SalonName, tenant.SalonTagline, tenant.OwnerName).Scan(
		&tenant.ID, &tenant.CreatedAt, &tenant.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create tenant: %v", err)
	}

	return tenant
}

// ProfileOption configures a test profile
type ProfileOption func(*models.Profile)

func WithRole(role models.Role) ProfileOption {
	return func(p *models.Profile) { p.Role = role }
}

func WithTenant(tenantID uuid.UUID) ProfileOption {
	return func(p *models.Profile) { p.TenantID = &tenantID }
}

func WithEmail(email string) ProfileOption {
	return func(p *models.Profile) { p.Email = email }
}

// CreateProfile creates a test profile, owner role by default
func (f *Fixtures) CreateProfile(t *testing.T, opts ...ProfileOption) *models.Profile {
	t.Helper()
	f.counter++

	profile := &models.Profile{
		Role:     models.RoleOwner,
		Email:    fmt.Sprintf("user%d@example.com", f.counter),
		FullName: fmt.Sprintf("Test User %d", f.counter),
	}
	for _, opt := range opts {
		opt(profile)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO profiles (tenant_id, role, email, full_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, profile.TenantID, profile.Role, profile.Email, profile.FullName).Scan(
		&profile.ID, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	return profile
}

// CreateCredentials stores a password for a profile
func (f *Fixtures) CreateCredentials(t *testing.T, profileID uuid.UUID, password string) {
	t.Helper()

	hash, err := identity.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	_, err = f.db.Pool.Exec(context.Background(), `
		INSERT INTO auth_credentials (profile_id, password_hash) VALUES ($1, $2)
	`, profileID, hash)
	if err != nil {
		t.Fatalf("failed to create credentials: %v", err)
	}
}

// CreateStaff creates a test staff member
func (f *Fixtures) CreateStaff(t *testing.T, tenantID uuid.UUID) *models.StaffMember {
	t.Helper()
	f.counter++

	staff := &models.StaffMember{
		TenantID:       tenantID,
		FullName:       fmt.Sprintf("Stylist %d", f.counter),
		Role:           "stylist",
		CommissionRate: 15,
		Active:         true,
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO staff (tenant_id, full_name, role, commission_rate, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, staff.TenantID, staff.FullName, staff.Role, staff.CommissionRate, staff.Active).Scan(
		&staff.ID, &staff.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create staff member: %v", err)
	}

	return staff
}

// CreateService creates a test catalogue service
func (f *Fixtures) CreateService(t *testing.T, tenantID uuid.UUID) *models.SalonService {
	t.Helper()
	f.counter++

	service := &models.SalonService{
		TenantID:    tenantID,
		Name:        fmt.Sprintf("Service %d", f.counter),
		DurationMin: 45,
		Price:       60,
		Active:      true,
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO services (tenant_id, name, duration, price, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, service.TenantID, service.Name, service.DurationMin, service.Price, service.Active).Scan(
		&service.ID, &service.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}

	return service
}

// CreateClient creates a test client
func (f *Fixtures) CreateClient(t *testing.T, tenantID uuid.UUID) *models.Client {
	t.Helper()
	f.counter++

	client := &models.Client{
		TenantID: tenantID,
		Name:     fmt.Sprintf("Client %d", f.counter),
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO clients (tenant_id, name) VALUES ($1, $2)
		RETURNING id, created_at
	`, client.TenantID, client.Name).Scan(&client.ID, &client.CreatedAt)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}

// CreateBooking creates a confirmed booking starting now
func (f *Fixtures) CreateBooking(t *testing.T, tenantID, staffID, serviceID uuid.UUID) *models.Booking {
	t.Helper()
	f.counter++

	start := time.Now()
	booking := &models.Booking{
		TenantID:   tenantID,
		ClientName: fmt.Sprintf("Walk-in %d", f.counter),
		StaffID:    staffID,
		ServiceID:  serviceID,
		StartTime:  start,
		EndTime:    start.Add(45 * time.Minute),
		Status:     models.BookingStatusConfirmed,
		TotalPrice: 60,
		Source:     "walkin",
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO bookings (tenant_id, client_name, staff_id, service_id, start_time, end_time, status, total_price, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`, booking.TenantID, booking.ClientName, booking.StaffID, booking.ServiceID,
		booking.StartTime, booking.EndTime, booking.Status, booking.TotalPrice, booking.Source,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}

	return booking
}
