package models

import "time"

// DashboardStats is the headline card row on the dashboard.
type DashboardStats struct {
	TodayBookings int     `json:"today_bookings"`
	TodayRevenue  float64 `json:"today_revenue"`
	TotalClients  int     `json:"total_clients"`
	TodayCalls    int     `json:"today_calls"`
}

// RevenuePoint is one day of the revenue chart.
type RevenuePoint struct {
	Day     time.Time `json:"day"`
	Revenue float64   `json:"revenue"`
}

// ActivityItem is one line of the recent-activity feed.
type ActivityItem struct {
	Kind       string    `json:"kind"`
	Label      string    `json:"label"`
	HappenedAt time.Time `json:"happened_at"`
}

// ServiceBreakdown aggregates bookings and revenue per catalogue service.
type ServiceBreakdown struct {
	ServiceName string  `json:"service_name"`
	Bookings    int     `json:"bookings"`
	Revenue     float64 `json:"revenue"`
}

// StatusCount is the booking-status distribution over a window.
type StatusCount struct {
	Status string `json:"status"`
	Total  int    `json:"total"`
}
