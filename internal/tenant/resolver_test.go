package tenant

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/voxali/salon-admin/internal/impersonation"
	"github.com/voxali/salon-admin/internal/models"
)

func TestResolveTenantID(t *testing.T) {
	impersonated := uuid.New()
	profileTenant := uuid.New()
	fallback := uuid.New()

	activeFlag := &impersonation.Flag{TenantID: impersonated, Active: true}
	inactiveFlag := &impersonation.Flag{TenantID: impersonated, Active: false}

	ownerProfile := &models.Profile{Role: models.RoleOwner, TenantID: &profileTenant}
	tenantlessOwner := &models.Profile{Role: models.RoleOwner}
	superAdmin := &models.Profile{Role: models.RoleSuperAdmin}

	tests := []struct {
		name     string
		flag     *impersonation.Flag
		profile  *models.Profile
		fallback uuid.UUID
		want     uuid.UUID
		wantOK   bool
	}{
		{"active flag beats profile tenant", activeFlag, ownerProfile, fallback, impersonated, true},
		{"active flag beats super admin global view", activeFlag, superAdmin, fallback, impersonated, true},
		{"inactive flag is ignored", inactiveFlag, ownerProfile, fallback, profileTenant, true},
		{"profile tenant wins without a flag", nil, ownerProfile, fallback, profileTenant, true},
		{"super admin without flag has no tenant", nil, superAdmin, fallback, uuid.Nil, false},
		{"tenantless owner falls back", nil, tenantlessOwner, fallback, fallback, true},
		{"tenantless owner without fallback has nothing", nil, tenantlessOwner, uuid.Nil, uuid.Nil, false},
		{"no profile falls back", nil, nil, fallback, fallback, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveTenantID(tt.flag, tt.profile, tt.fallback)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
