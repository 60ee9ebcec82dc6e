package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/voxali/salon-admin/internal/database"
	"github.com/voxali/salon-admin/internal/models"
)

type AnalyticsService struct {
	db *database.DB
}

func NewAnalyticsService(db *database.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

func (s *AnalyticsService) DashboardStats(ctx context.Context, tenantID uuid.UUID) (*models.DashboardStats, error) {
	env, err := database.CallRPC(ctx, s.db.Pool, "rpc_dashboard_stats", tenantID)
	if err != nil {
		return nil, err
	}

	var stats models.DashboardStats
	if err := env.Field("today_bookings", &stats.TodayBookings); err != nil {
		return nil, err
	}
	if err := env.Field("today_revenue", &stats.TodayRevenue); err != nil {
		return nil, err
	}
	if err := env.Field("total_clients", &stats.TotalClients); err != nil {
		return nil, err
	}
	if err := env.Field("today_calls", &stats.TodayCalls); err != nil {
		return nil, err
	}
	return &stats, nil
}

// WeeklyRevenue is the dashboard chart: the last seven days including today,
// zero-filled for days without completed bookings.
func (s *AnalyticsService) WeeklyRevenue(ctx context.Context, tenantID uuid.UUID) ([]models.RevenuePoint, error) {
	return s.revenueRows(ctx, `SELECT * FROM rpc_weekly_revenue($1)`, tenantID)
}

func (s *AnalyticsService) Revenue(ctx context.Context, tenantID uuid.UUID, days int) ([]models.RevenuePoint, error) {
	return s.revenueRows(ctx, `SELECT * FROM rpc_analytics_revenue($1, $2)`, tenantID, clampDays(days))
}

func (s *AnalyticsService) revenueRows(ctx context.Context, query string, args ...any) ([]models.RevenuePoint, error) {
	rows, err := s.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []models.RevenuePoint
	for rows.Next() {
		var p models.RevenuePoint
		if err := rows.Scan(&p.Day, &p.Revenue); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (s *AnalyticsService) RecentActivity(ctx context.Context, tenantID uuid.UUID) ([]models.ActivityItem, error) {
	rows, err := s.db.Pool.Query(ctx, `SELECT * FROM rpc_recent_activity($1)`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ActivityItem
	for rows.Next() {
		var it models.ActivityItem
		if err := rows.Scan(&it.Kind, &it.Label, &it.HappenedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *AnalyticsService) TopServices(ctx context.Context, tenantID uuid.UUID, days int) ([]models.ServiceBreakdown, error) {
	rows, err := s.db.Pool.Query(ctx, `SELECT * FROM rpc_analytics_services($1, $2)`, tenantID, clampDays(days))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var breakdown []models.ServiceBreakdown
	for rows.Next() {
		var b models.ServiceBreakdown
		if err := rows.Scan(&b.ServiceName, &b.Bookings, &b.Revenue); err != nil {
			return nil, err
		}
		breakdown = append(breakdown, b)
	}
	return breakdown, rows.Err()
}

func (s *AnalyticsService) StatusBreakdown(ctx context.Context, tenantID uuid.UUID, days int) ([]models.StatusCount, error) {
	rows, err := s.db.Pool.Query(ctx, `SELECT * FROM rpc_analytics_statuses($1, $2)`, tenantID, clampDays(days))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.StatusCount
	for rows.Next() {
		var c models.StatusCount
		if err := rows.Scan(&c.Status, &c.Total); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func clampDays(days int) int {
	if days <= 0 {
		return 30
	}
	if days > 365 {
		return 365
	}
	return days
}
