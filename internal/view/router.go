// Package view maps resolver state to the layout the client should render
// and the navigation entries the resolved role may see. It is deliberately
// pure: no I/O, just the routing rules.
package view

import (
	"github.com/voxali/salon-admin/internal/models"
	"github.com/voxali/salon-admin/internal/session"
)

type Layout string

const (
	// LayoutLoading renders the splash while bootstrap or resolution runs.
	LayoutLoading Layout = "loading"
	// LayoutRecovery offers the connection-issue screen with the storage
	// purge escape hatch.
	LayoutRecovery Layout = "recovery"
	LayoutLogin    Layout = "login"
	// LayoutSuperAdmin is the cross-tenant console, shown to super admins
	// who are not impersonating a salon.
	LayoutSuperAdmin Layout = "super_admin"
	LayoutDashboard  Layout = "dashboard"
)

// Select picks the layout for a resolver snapshot. The checks run in a fixed
// order; each earlier condition short-circuits the rest.
func Select(snap session.Snapshot, impersonating bool) Layout {
	switch {
	case snap.Loading:
		return LayoutLoading
	case snap.TimedOut:
		return LayoutRecovery
	case snap.Principal == nil:
		return LayoutLogin
	case snap.Role == "":
		return LayoutRecovery
	case snap.Role == models.RoleSuperAdmin && !impersonating:
		return LayoutSuperAdmin
	default:
		return LayoutDashboard
	}
}

// Entry is one sidebar navigation item.
type Entry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

type navItem struct {
	entry Entry
	roles []models.Role
}

var dashboardNav = []navItem{
	{Entry{"dashboard", "Dashboard", "/"},
		[]models.Role{models.RoleSuperAdmin, models.RoleOwner, models.RoleManager}},
	{Entry{"bookings", "Bookings", "/bookings"},
		[]models.Role{models.RoleSuperAdmin, models.RoleOwner, models.RoleManager, models.RoleStaff}},
	{Entry{"clients", "Clients", "/clients"},
		[]models.Role{models.RoleSuperAdmin, models.RoleOwner, models.RoleManager, models.RoleReceptionist}},
	{Entry{"stylists", "Stylists", "/stylists"},
		[]models.Role{models.RoleSuperAdmin, models.RoleOwner, models.RoleManager}},
	{Entry{"analytics", "Analytics", "/analytics"},
		[]models.Role{models.RoleSuperAdmin, models.RoleOwner, models.RoleManager}},
	{Entry{"marketing", "Marketing", "/marketing"},
		[]models.Role{models.RoleSuperAdmin, models.RoleOwner, models.RoleManager}},
	{Entry{"bella", "Bella AI", "/bella"},
		[]models.Role{models.RoleSuperAdmin, models.RoleOwner, models.RoleManager}},
	{Entry{"calls", "Call Log", "/calls"},
		[]models.Role{models.RoleSuperAdmin, models.RoleOwner, models.RoleManager, models.RoleReceptionist}},
	{Entry{"settings", "Settings", "/settings"},
		[]models.Role{models.RoleSuperAdmin, models.RoleOwner}},
}

var superAdminNav = []Entry{
	{"saas_dashboard", "Overview", "/admin"},
	{"salons_list", "Salons", "/admin/salons"},
}

// Navigation returns the sidebar entries a role may see. Super admins outside
// impersonation get the cross-tenant console nav instead of the salon one.
func Navigation(role models.Role, impersonating bool) []Entry {
	if role == models.RoleSuperAdmin && !impersonating {
		out := make([]Entry, len(superAdminNav))
		copy(out, superAdminNav)
		return out
	}

	var out []Entry
	for _, item := range dashboardNav {
		for _, allowed := range item.roles {
			if allowed == role {
				out = append(out, item.entry)
				break
			}
		}
	}
	return out
}
