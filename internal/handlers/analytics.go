package handlers

import (
	"context"
	"strconv"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/voxali/salon-admin/internal/middleware"
)

type AnalyticsHandler struct {
	analytics AnalyticsServiceInterface
}

func NewAnalyticsHandler(analytics AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Dashboard bundles the stat cards, the weekly chart and the activity feed
// into one response so the dashboard renders with a single request.
func (h *AnalyticsHandler) Dashboard(c *drift.Context) {
	ctx := context.Background()
	tenantID := middleware.GetTenantID(c)

	stats, err := h.analytics.DashboardStats(ctx, tenantID)
	if err != nil {
		c.InternalServerError("failed to load dashboard stats")
		return
	}
	weekly, err := h.analytics.WeeklyRevenue(ctx, tenantID)
	if err != nil {
		c.InternalServerError("failed to load weekly revenue")
		return
	}
	activity, err := h.analytics.RecentActivity(ctx, tenantID)
	if err != nil {
		c.InternalServerError("failed to load recent activity")
		return
	}

	_ = c.JSON(200, map[string]any{
		"stats":           stats,
		"weekly_revenue":  weekly,
		"recent_activity": activity,
	})
}

func (h *AnalyticsHandler) Revenue(c *drift.Context) {
	points, err := h.analytics.Revenue(context.Background(), middleware.GetTenantID(c), h.days(c))
	if err != nil {
		c.InternalServerError("failed to load revenue")
		return
	}
	_ = c.JSON(200, points)
}

func (h *AnalyticsHandler) TopServices(c *drift.Context) {
	breakdown, err := h.analytics.TopServices(context.Background(), middleware.GetTenantID(c), h.days(c))
	if err != nil {
		c.InternalServerError("failed to load service breakdown")
		return
	}
	_ = c.JSON(200, breakdown)
}

func (h *AnalyticsHandler) Statuses(c *drift.Context) {
	counts, err := h.analytics.StatusBreakdown(context.Background(), middleware.GetTenantID(c), h.days(c))
	if err != nil {
		c.InternalServerError("failed to load status breakdown")
		return
	}
	_ = c.JSON(200, counts)
}

func (h *AnalyticsHandler) days(c *drift.Context) int {
	days, _ := strconv.Atoi(c.QueryParam("days"))
	return days
}
