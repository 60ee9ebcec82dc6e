package testutil

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/internal/services"
)

// MockBookingService mocks the BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) ListByDay(ctx context.Context, tenantID uuid.UUID, day time.Time) ([]models.Booking, error) {
	args := m.Called(ctx, tenantID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingService) UpdateStatus(ctx context.Context, tenantID, bookingID uuid.UUID, status string) error {
	args := m.Called(ctx, tenantID, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingService) AddWalkIn(ctx context.Context, tenantID uuid.UUID, clientName, clientPhone string, serviceID, stylistID uuid.UUID, startTime time.Time) (uuid.UUID, error) {
	args := m.Called(ctx, tenantID, clientName, clientPhone, serviceID, stylistID, startTime)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockTenantAdminService mocks the TenantAdminService
type MockTenantAdminService struct {
	mock.Mock
}

func (m *MockTenantAdminService) ListTenants(ctx context.Context) ([]services.TenantListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.TenantListing), args.Error(1)
}

func (m *MockTenantAdminService) GetTenant(ctx context.Context, tenantID uuid.UUID) (*models.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}

func (m *MockTenantAdminService) Overview(ctx context.Context) (*services.PlatformOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PlatformOverview), args.Error(1)
}

func (m *MockTenantAdminService) CreateTenantAndOwner(ctx context.Context, salonName, ownerName, ownerEmail, ownerPassword string) (uuid.UUID, uuid.UUID, error) {
	args := m.Called(ctx, salonName, ownerName, ownerEmail, ownerPassword)
	return args.Get(0).(uuid.UUID), args.Get(1).(uuid.UUID), args.Error(2)
}

// MockCallLogService mocks the CallLogService
type MockCallLogService struct {
	mock.Mock
}

func (m *MockCallLogService) List(ctx context.Context, tenantID uuid.UUID, outcome string, limit int) ([]models.CallLog, error) {
	args := m.Called(ctx, tenantID, outcome, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CallLog), args.Error(1)
}

func (m *MockCallLogService) Ingest(ctx context.Context, tenantID uuid.UUID, callerName *string, callerPhone, outcome string, durationSec int, transcript *string, bookingID *uuid.UUID, startedAt time.Time) (*models.CallLog, error) {
	args := m.Called(ctx, tenantID, callerName, callerPhone, outcome, durationSec, transcript, bookingID, startedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CallLog), args.Error(1)
}
