package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voxali/salon-admin/internal/identity"
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/internal/session"
)

func readySnapshot(role models.Role) session.Snapshot {
	return session.Snapshot{
		State:     session.StateReady,
		Role:      role,
		Principal: &identity.Principal{},
		Profile:   &models.Profile{Role: role},
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name          string
		snap          session.Snapshot
		impersonating bool
		want          Layout
	}{
		{"loading wins over everything", session.Snapshot{State: session.StateLoading, Loading: true}, false, LayoutLoading},
		{"resolving still shows loading", session.Snapshot{State: session.StateResolving, Loading: true, Principal: &identity.Principal{}}, false, LayoutLoading},
		{"timed out shows recovery", session.Snapshot{State: session.StateTimedOut, TimedOut: true, Principal: &identity.Principal{}}, false, LayoutRecovery},
		{"no principal shows login", session.Snapshot{State: session.StateLoggedOut}, false, LayoutLogin},
		{"principal without role shows recovery", session.Snapshot{State: session.StateReady, Principal: &identity.Principal{}}, false, LayoutRecovery},
		{"super admin gets the console", readySnapshot(models.RoleSuperAdmin), false, LayoutSuperAdmin},
		{"impersonating super admin gets the dashboard", readySnapshot(models.RoleSuperAdmin), true, LayoutDashboard},
		{"owner gets the dashboard", readySnapshot(models.RoleOwner), false, LayoutDashboard},
		{"staff gets the dashboard", readySnapshot(models.RoleStaff), false, LayoutDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.snap, tt.impersonating))
		})
	}
}

func keys(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name          string
		role          models.Role
		impersonating bool
		want          []string
	}{
		{
			"owner sees the full salon nav",
			models.RoleOwner, false,
			[]string{"dashboard", "bookings", "clients", "stylists", "analytics", "marketing", "bella", "calls", "settings"},
		},
		{
			"manager sees everything but settings",
			models.RoleManager, false,
			[]string{"dashboard", "bookings", "clients", "stylists", "analytics", "marketing", "bella", "calls"},
		},
		{
			"staff only sees bookings",
			models.RoleStaff, false,
			[]string{"bookings"},
		},
		{
			"receptionist sees clients and calls",
			models.RoleReceptionist, false,
			[]string{"clients", "calls"},
		},
		{
			"super admin outside impersonation gets the console nav",
			models.RoleSuperAdmin, false,
			[]string{"saas_dashboard", "salons_list"},
		},
		{
			"impersonating super admin sees the full salon nav",
			models.RoleSuperAdmin, true,
			[]string{"dashboard", "bookings", "clients", "stylists", "analytics", "marketing", "bella", "calls", "settings"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys(Navigation(tt.role, tt.impersonating)))
		})
	}
}

func TestNavigation_UnknownRoleSeesNothing(t *testing.T) {
	assert.Empty(t, Navigation("", false))
}
