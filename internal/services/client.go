package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/voxali/salon-admin/internal/database"
	"github.com/voxali/salon-admin/internal/models"
)

var ErrClientNotFound = errors.New("client not found")

type ClientService struct {
	db *database.DB
}

func NewClientService(db *database.DB) *ClientService {
	return &ClientService{db: db}
}

// List returns the tenant's clients with visit and spend aggregates. A
// non-empty search narrows by name or phone.
func (s *ClientService) List(ctx context.Context, tenantID uuid.UUID, search string) ([]models.Client, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT c.id, c.tenant_id, c.name, c.phone, c.email, c.notes, c.created_at,
			COUNT(b.id) FILTER (WHERE b.status = 'completed'),
			COALESCE(SUM(b.total_price) FILTER (WHERE b.status = 'completed'), 0)
		FROM clients c
		LEFT JOIN bookings b ON b.client_id = c.id
		WHERE c.tenant_id = $1
			AND ($2 = '' OR c.name ILIKE '%' || $2 || '%' OR c.phone ILIKE '%' || $2 || '%')
		GROUP BY c.id
		ORDER BY c.name
	`, tenantID, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(
			&c.ID, &c.TenantID, &c.Name, &c.Phone, &c.Email, &c.Notes,
			&c.CreatedAt, &c.VisitCount, &c.TotalSpent,
		); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (s *ClientService) Create(ctx context.Context, tenantID uuid.UUID, name string, phone, email, notes *string) (*models.Client, error) {
	var c models.Client
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO clients (tenant_id, name, phone, email, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, tenant_id, name, phone, email, notes, created_at
	`, tenantID, name, phone, email, notes).Scan(
		&c.ID, &c.TenantID, &c.Name, &c.Phone, &c.Email, &c.Notes, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Update rewrites a client's contact card. Nil fields clear the stored value;
// the edit form always submits the full card.
func (s *ClientService) Update(ctx context.Context, tenantID, clientID uuid.UUID, name string, phone, email, notes *string) error {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE clients SET name = $1, phone = $2, email = $3, notes = $4
		WHERE id = $5 AND tenant_id = $6
	`, name, phone, email, notes, clientID, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (s *ClientService) Delete(ctx context.Context, tenantID, clientID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `
		DELETE FROM clients WHERE id = $1 AND tenant_id = $2
	`, clientID, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}
