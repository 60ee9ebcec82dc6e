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
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
)

type BookingService struct {
	db *database.DB
}

func NewBookingService(db *database.DB) *BookingService {
	return &BookingService{db: db}
}

// ListByDay returns a tenant's bookings for one calendar day with staff and
// service rows joined in for the schedule view.
func (s *BookingService) ListByDay(ctx context.Context, tenantID uuid.UUID, day time.Time) ([]models.Booking, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT b.id, b.tenant_id, b.client_id, b.client_name, b.client_phone,
			b.staff_id, b.service_id, b.start_time, b.end_time, b.status,
			b.total_price, b.source, b.created_at,
			st.full_name, st.color,
			sv.name, sv.duration, sv.price
		FROM bookings b
		JOIN staff st ON st.id = b.staff_id
		JOIN services sv ON sv.id = b.service_id
		WHERE b.tenant_id = $1 AND b.start_time::date = $2::date
		ORDER BY b.start_time
	`, tenantID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var (
			b       models.Booking
			staff   models.StaffMember
			service models.SalonService
		)
		if err := rows.Scan(
			&b.ID, &b.TenantID, &b.ClientID, &b.ClientName, &b.ClientPhone,
			&b.StaffID, &b.ServiceID, &b.StartTime, &b.EndTime, &b.Status,
			&b.TotalPrice, &b.Source, &b.CreatedAt,
			&staff.FullName, &staff.Color,
			&service.Name, &service.DurationMin, &service.Price,
		); err != nil {
			return nil, err
		}
		staff.ID = b.StaffID
		service.ID = b.ServiceID
		b.Staff = &staff
		b.Service = &service
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// UpdateStatus moves a booking through its lifecycle. The update is tenant
// scoped so one salon can never touch another's bookings.
func (s *BookingService) UpdateStatus(ctx context.Context, tenantID, bookingID uuid.UUID, status string) error {
	switch status {
	case models.BookingStatusConfirmed, models.BookingStatusCompleted,
		models.BookingStatusCancelled, models.BookingStatusNoShow:
	default:
		return ErrInvalidBookingStatus
	}

	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE bookings SET status = $1
		WHERE id = $2 AND tenant_id = $3
	`, status, bookingID, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// AddWalkIn books a walk-in client on the spot. Pricing and duration come
// from the service row inside the database function.
func (s *BookingService) AddWalkIn(ctx context.Context, tenantID uuid.UUID, clientName, clientPhone string, serviceID, stylistID uuid.UUID, startTime time.Time) (uuid.UUID, error) {
	env, err := database.CallRPC(ctx, s.db.Pool, "rpc_add_walkin",
		tenantID, clientName, clientPhone, serviceID, stylistID, startTime)
	if err != nil {
		return uuid.Nil, err
	}
	return env.UUID("booking_id")
}
