package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/internal/services"
)

// AuthProviderInterface defines the methods used by handlers from the
// identity provider.
type AuthProviderInterface interface {
	SignInWithCredentials(ctx context.Context, email, password string) (*identity.Session, error)
	Refresh(ctx context.Context, refreshToken string) (*identity.Session, error)
	SignOut(ctx context.Context, principalID uuid.UUID) error
}

// BookingServiceInterface defines the methods used by handlers from BookingService
type BookingServiceInterface interface {
	ListByDay(ctx context.Context, tenantID uuid.UUID, day time.Time) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, tenantID, bookingID uuid.UUID, status string) error
	AddWalkIn(ctx context.Context, tenantID uuid.UUID, clientName, clientPhone string, serviceID, stylistID uuid.UUID, startTime time.Time) (uuid.UUID, error)
}

// ClientServiceInterface defines the methods used by handlers from ClientService
type ClientServiceInterface interface {
	List(ctx context.Context, tenantID uuid.UUID, search string) ([]models.Client, error)
	Create(ctx context.Context, tenantID uuid.UUID, name string, phone, email, notes *string) (*models.Client, error)
	Update(ctx context.Context, tenantID, clientID uuid.UUID, name string, phone, email, notes *string) error
	Delete(ctx context.Context, tenantID, clientID uuid.UUID) error
}

// StaffServiceInterface defines the methods used by handlers from StaffService
type StaffServiceInterface interface {
	Board(ctx context.Context, tenantID uuid.UUID) ([]models.StaffBoardRow, error)
	Add(ctx context.Context, tenantID uuid.UUID, name string, email, phone, role *string, commission *float64) (uuid.UUID, error)
	UpdateCommission(ctx context.Context, tenantID, staffID uuid.UUID, rate float64) error
	SetActive(ctx context.Context, tenantID, staffID uuid.UUID, active bool) error
	SetBlockedToday(ctx context.Context, tenantID, staffID uuid.UUID, blocked bool) error
	CreateLogin(ctx context.Context, tenantID, staffID uuid.UUID, email, password string) (uuid.UUID, error)
}

// CampaignServiceInterface defines the methods used by handlers from CampaignService
type CampaignServiceInterface interface {
	List(ctx context.Context, tenantID uuid.UUID) ([]models.Campaign, error)
	Create(ctx context.Context, tenantID uuid.UUID, name, channel, message string) (*models.Campaign, error)
	Schedule(ctx context.Context, tenantID, campaignID uuid.UUID, at time.Time) error
	MarkSent(ctx context.Context, tenantID, campaignID uuid.UUID) error
	Delete(ctx context.Context, tenantID, campaignID uuid.UUID) error
}

// CallLogServiceInterface defines the methods used by handlers from CallLogService
type CallLogServiceInterface interface {
	List(ctx context.Context, tenantID uuid.UUID, outcome string, limit int) ([]models.CallLog, error)
	Ingest(ctx context.Context, tenantID uuid.UUID, callerName *string, callerPhone, outcome string, durationSec int, transcript *string, bookingID *uuid.UUID, startedAt time.Time) (*models.CallLog, error)
}

// SettingsServiceInterface defines the methods used by handlers from SettingsService
type SettingsServiceInterface interface {
	Services(ctx context.Context, tenantID uuid.UUID) ([]models.SalonService, error)
	UpsertService(ctx context.Context, tenantID uuid.UUID, serviceID *uuid.UUID, name string, durationMin int, price float64) (uuid.UUID, error)
	SetServiceActive(ctx context.Context, tenantID, serviceID uuid.UUID, active bool) error
	Hours(ctx context.Context, tenantID uuid.UUID) ([]models.BusinessHours, error)
	UpdateHours(ctx context.Context, tenantID uuid.UUID, weekday int, open, close string, closed bool) error
}

// AnalyticsServiceInterface defines the methods used by handlers from AnalyticsService
type AnalyticsServiceInterface interface {
	DashboardStats(ctx context.Context, tenantID uuid.UUID) (*models.DashboardStats, error)
	WeeklyRevenue(ctx context.Context, tenantID uuid.UUID) ([]models.RevenuePoint, error)
	RecentActivity(ctx context.Context, tenantID uuid.UUID) ([]models.ActivityItem, error)
	Revenue(ctx context.Context, tenantID uuid.UUID, days int) ([]models.RevenuePoint, error)
	TopServices(ctx context.Context, tenantID uuid.UUID, days int) ([]models.ServiceBreakdown, error)
	StatusBreakdown(ctx context.Context, tenantID uuid.UUID, days int) ([]models.StatusCount, error)
}

// TenantAdminServiceInterface defines the methods used by handlers from TenantAdminService
type TenantAdminServiceInterface interface {
	ListTenants(ctx context.Context) ([]services.TenantListing, error)
	GetTenant(ctx context.Context, tenantID uuid.UUID) (*models.Tenant, error)
	Overview(ctx context.Context) (*services.PlatformOverview, error)
	CreateTenantAndOwner(ctx context.Context, salonName, ownerName, ownerEmail, ownerPassword string) (uuid.UUID, uuid.UUID, error)
}
