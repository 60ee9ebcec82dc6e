package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/middleware"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/internal/services"
	"github.com/voxali/salon-admin/pkg/dto"
	"github.com/voxali/salon-admin/tests/testutil"
)

func testTokens() *identity.TokenService {
	return identity.NewTokenService("test-secret-key", 15*time.Minute, 24*time.Hour)
}

func generateTestToken(t *testing.T, tokens *identity.TokenService, userID uuid.UUID, email string) string {
	t.Helper()
	pair, err := tokens.GenerateTokenPair(userID, email)
	require.NoError(t, err)
	return pair.AccessToken
}

// scopeTenant stands in for Resolve+TenantScope so handler tests pin the
// tenant directly.
func scopeTenant(tenantID uuid.UUID) drift.HandlerFunc {
	return func(c *drift.Context) {
		c.Set(middleware.TenantIDKey, tenantID)
		c.Next()
	}
}

func TestBookingHandler_List_Success(t *testing.T) {
	mockBookings := new(testutil.MockBookingService)
	handler := NewBookingHandler(mockBookings)
	tokens := testTokens()

	userID := uuid.New()
	tenantID := uuid.New()
	day, _ := time.Parse("2006-01-02", "2026-08-28")
	bookings := []models.Booking{
		{ID: uuid.New(), TenantID: tenantID, ClientName: "Ana", Status: models.BookingStatusConfirmed},
		{ID: uuid.New(), TenantID: tenantID, ClientName: "Mira", Status: models.BookingStatusCompleted},
	}

	mockBookings.On("ListByDay", mock.Anything, tenantID, day).Return(bookings, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(tokens))
	app.Use(scopeTenant(tenantID))
	app.Get("/bookings", handler.List)

	token := generateTestToken(t, tokens, userID, "owner@example.com")
	req := httptest.NewRequest(http.MethodGet, "/bookings?date=2026-08-28", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response []models.Booking
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Len(t, response, 2)
	assert.Equal(t, "Ana", response[0].ClientName)

	mockBookings.AssertExpectations(t)
}

func TestBookingHandler_List_BadDate(t *testing.T) {
	mockBookings := new(testutil.MockBookingService)
	handler := NewBookingHandler(mockBookings)
	tokens := testTokens()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(tokens))
	app.Use(scopeTenant(uuid.New()))
	app.Get("/bookings", handler.List)

	token := generateTestToken(t, tokens, uuid.New(), "owner@example.com")
	req := httptest.NewRequest(http.MethodGet, "/bookings?date=28-08-2026", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "YYYY-MM-DD")
}

func TestBookingHandler_List_Unauthenticated(t *testing.T) {
	mockBookings := new(testutil.MockBookingService)
	handler := NewBookingHandler(mockBookings)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(testTokens()))
	app.Get("/bookings", handler.List)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookingHandler_UpdateStatus_Success(t *testing.T) {
	mockBookings := new(testutil.MockBookingService)
	handler := NewBookingHandler(mockBookings)
	tokens := testTokens()

	tenantID := uuid.New()
	bookingID := uuid.New()

	mockBookings.On("UpdateStatus", mock.Anything, tenantID, bookingID, models.BookingStatusCompleted).Return(nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(tokens))
	app.Use(scopeTenant(tenantID))
	app.Patch("/bookings/:bookingId/status", handler.UpdateStatus)

	body, _ := json.Marshal(dto.UpdateBookingStatusRequest{Status: models.BookingStatusCompleted})
	token := generateTestToken(t, tokens, uuid.New(), "owner@example.com")
	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+bookingID.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockBookings.AssertExpectations(t)
}

func TestBookingHandler_UpdateStatus_NotFound(t *testing.T) {
	mockBookings := new(testutil.MockBookingService)
	handler := NewBookingHandler(mockBookings)
	tokens := testTokens()

	tenantID := uuid.New()
	bookingID := uuid.New()

	mockBookings.On("UpdateStatus", mock.Anything, tenantID, bookingID, models.BookingStatusCancelled).
		Return(services.ErrBookingNotFound)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(tokens))
	app.Use(scopeTenant(tenantID))
	app.Patch("/bookings/:bookingId/status", handler.UpdateStatus)

	body, _ := json.Marshal(dto.UpdateBookingStatusRequest{Status: models.BookingStatusCancelled})
	token := generateTestToken(t, tokens, uuid.New(), "owner@example.com")
	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+bookingID.String()+"/status", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "booking not found")
	mockBookings.AssertExpectations(t)
}

func TestBookingHandler_UpdateStatus_InvalidID(t *testing.T) {
	mockBookings := new(testutil.MockBookingService)
	handler := NewBookingHandler(mockBookings)
	tokens := testTokens()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(tokens))
	app.Use(scopeTenant(uuid.New()))
	app.Patch("/bookings/:bookingId/status", handler.UpdateStatus)

	body, _ := json.Marshal(dto.UpdateBookingStatusRequest{Status: models.BookingStatusCompleted})
	token := generateTestToken(t, tokens, uuid.New(), "owner@example.com")
	req := httptest.NewRequest(http.MethodPatch, "/bookings/not-a-uuid/status", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid booking id")
}

func TestBookingHandler_AddWalkIn_Success(t *testing.T) {
	mockBookings := new(testutil.MockBookingService)
	handler := NewBookingHandler(mockBookings)
	tokens := testTokens()

	tenantID := uuid.New()
	serviceID := uuid.New()
	stylistID := uuid.New()
	bookingID := uuid.New()
	start := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)

	mockBookings.On("AddWalkIn", mock.Anything, tenantID, "Ana", "555-0101", serviceID, stylistID, start).
		Return(bookingID, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(tokens))
	app.Use(scopeTenant(tenantID))
	app.Post("/bookings/walkin", handler.AddWalkIn)

	body, _ := json.Marshal(dto.AddWalkInRequest{
		ClientName:  "Ana",
		ClientPhone: "555-0101",
		ServiceID:   serviceID,
		StylistID:   stylistID,
		StartTime:   start,
	})
	token := generateTestToken(t, tokens, uuid.New(), "owner@example.com")
	req := httptest.NewRequest(http.MethodPost, "/bookings/walkin", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response dto.BookingCreatedResponse
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, bookingID, response.BookingID)

	mockBookings.AssertExpectations(t)
}

func TestBookingHandler_AddWalkIn_MissingFields(t *testing.T) {
	mockBookings := new(testutil.MockBookingService)
	handler := NewBookingHandler(mockBookings)
	tokens := testTokens()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(tokens))
	app.Use(scopeTenant(uuid.New()))
	app.Post("/bookings/walkin", handler.AddWalkIn)

	body, _ := json.Marshal(dto.AddWalkInRequest{ClientName: "Ana"})
	token := generateTestToken(t, tokens, uuid.New(), "owner@example.com")
	req := httptest.NewRequest(http.MethodPost, "/bookings/walkin", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "required")
}
