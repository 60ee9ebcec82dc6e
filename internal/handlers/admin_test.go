package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voxali/salon-admin/internal/middleware"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/internal/services"
	"github.com/voxali/salon-admin/pkg/dto"
	"github.com/voxali/salon-admin/tests/testutil"
)

// asRole stands in for Resolve so role-gated routes can be tested without a
// live session store.
func asRole(role models.Role) drift.HandlerFunc {
	return func(c *drift.Context) {
		c.Set(middleware.RoleKey, role)
		c.Next()
	}
}

func TestAdminHandler_Overview_Success(t *testing.T) {
	mockTenants := new(testutil.MockTenantAdminService)
	handler := NewAdminHandler(mockTenants)
	tokens := testTokens()

	overview := &services.PlatformOverview{Tenants: 3, Bookings30d: 42, Revenue30d: 1800}
	mockTenants.On("Overview", mock.Anything).Return(overview, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(tokens))
	app.Use(asRole(models.RoleSuperAdmin))
	app.Use(middleware.RequireRole(models.RoleSuperAdmin))
	app.Get("/admin/overview", handler.Overview)

	token := generateTestToken(t, tokens, uuid.New(), "admin@voxali.com")
	req := httptest.NewRequest(http.MethodGet, "/admin/overview", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response services.PlatformOverview
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, 3, response.Tenants)
	assert.Equal(t, 42, response.Bookings30d)

	mockTenants.AssertExpectations(t)
}

func TestAdminHandler_Overview_ForbiddenForOwner(t *testing.T) {
	mockTenants := new(testutil.MockTenantAdminService)
	handler := NewAdminHandler(mockTenants)
	tokens := testTokens()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(tokens))
	app.Use(asRole(models.RoleOwner))
	app.Use(middleware.RequireRole(models.RoleSuperAdmin))
	app.Get("/admin/overview", handler.Overview)

	token := generateTestToken(t, tokens, uuid.New(), "owner@example.com")
	req := httptest.NewRequest(http.MethodGet, "/admin/overview", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	mockTenants.AssertNotCalled(t, "Overview", mock.Anything)
}

func TestAdminHandler_ListTenants_EmptyIsNotNull(t *testing.T) {
	mockTenants := new(testutil.MockTenantAdminService)
	handler := NewAdminHandler(mockTenants)
	tokens := testTokens()

	mockTenants.On("ListTenants", mock.Anything).Return(nil, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(tokens))
	app.Get("/admin/salons", handler.ListTenants)

	token := generateTestToken(t, tokens, uuid.New(), "admin@voxali.com")
	req := httptest.NewRequest(http.MethodGet, "/admin/salons", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
	mockTenants.AssertExpectations(t)
}

func TestAdminHandler_GetTenant_NotFound(t *testing.T) {
	mockTenants := new(testutil.MockTenantAdminService)
	handler := NewAdminHandler(mockTenants)
	tokens := testTokens()

	tenantID := uuid.New()
	mockTenants.On("GetTenant", mock.Anything, tenantID).Return(nil, services.ErrTenantNotFound)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(tokens))
	app.Get("/admin/salons/:tenantId", handler.GetTenant)

	token := generateTestToken(t, tokens, uuid.New(), "admin@voxali.com")
	req := httptest.NewRequest(http.MethodGet, "/admin/salons/"+tenantID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "tenant not found")
	mockTenants.AssertExpectations(t)
}

func TestAdminHandler_CreateTenant_Success(t *testing.T) {
	mockTenants := new(testutil.MockTenantAdminService)
	handler := NewAdminHandler(mockTenants)
	tokens := testTokens()

	tenantID := uuid.New()
	profileID := uuid.New()

	mockTenants.On("CreateTenantAndOwner", mock.Anything,
		"Glow Studio", "Maya", "maya@glowstudio.com", "owner-password-1").
		Return(tenantID, profileID, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(tokens))
	app.Post("/admin/salons", handler.CreateTenant)

	body, _ := json.Marshal(dto.CreateTenantRequest{
		SalonName:     "Glow Studio",
		OwnerName:     "Maya",
		OwnerEmail:    "maya@glowstudio.com",
		OwnerPassword: "owner-password-1",
	})
	token := generateTestToken(t, tokens, uuid.New(), "admin@voxali.com")
	req := httptest.NewRequest(http.MethodPost, "/admin/salons", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response dto.TenantCreatedResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, tenantID, response.TenantID)
	assert.Equal(t, profileID, response.ProfileID)

	mockTenants.AssertExpectations(t)
}

func TestAdminHandler_CreateTenant_ShortPassword(t *testing.T) {
	mockTenants := new(testutil.MockTenantAdminService)
	handler := NewAdminHandler(mockTenants)
	tokens := testTokens()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(tokens))
	app.Post("/admin/salons", handler.CreateTenant)

	body, _ := json.Marshal(dto.CreateTenantRequest{
		SalonName:     "Glow Studio",
		OwnerName:     "Maya",
		OwnerEmail:    "maya@glowstudio.com",
		OwnerPassword: "short",
	})
	token := generateTestToken(t, tokens, uuid.New(), "admin@voxali.com")
	req := httptest.NewRequest(http.MethodPost, "/admin/salons", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least 8 characters")
	mockTenants.AssertNotCalled(t, "CreateTenantAndOwner",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
