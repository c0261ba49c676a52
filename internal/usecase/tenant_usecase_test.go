package usecase

import (
	"context"
	"testing"

	"github.com/laptopmundo/catalog-backend/internal/domain"
	"github.com/laptopmundo/catalog-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

func TestCreateTenant_Validation(t *testing.T) {
	uc := NewTenantUC(newFakeTenantRepo(), nopLogger{})

	_, err := uc.CreateTenant(context.Background(), &CreateTenantReq{Name: "", Domain: "shop.example.com"})
	require.ErrorIs(t, err, e.ErrMissingFields)

	_, err = uc.CreateTenant(context.Background(), &CreateTenantReq{Name: "Shop", Domain: " "})
	require.ErrorIs(t, err, e.ErrMissingFields)
}

func TestCreateTenant_ActiveByDefault(t *testing.T) {
	uc := NewTenantUC(newFakeTenantRepo(), nopLogger{})

	tenant, err := uc.CreateTenant(context.Background(), &CreateTenantReq{Name: "Shop", Domain: "shop.example.com"})
	require.NoError(t, err)
	require.True(t, tenant.IsActive)
	require.NotZero(t, tenant.ID)
}

func TestUpdateTenant_NotFound(t *testing.T) {
	uc := NewTenantUC(newFakeTenantRepo(), nopLogger{})

	_, err := uc.UpdateTenant(context.Background(), 1, &UpdateTenantReq{Name: "Shop", Domain: "shop.example.com"})
	require.ErrorIs(t, err, e.ErrTenantNotFound)
}

func TestTenants_List(t *testing.T) {
	repo := newFakeTenantRepo(
		domain.Tenant{ID: 1, Name: "A", Domain: "a.example.com", IsActive: true},
		domain.Tenant{ID: 2, Name: "B", Domain: "b.example.com", IsActive: true},
	)
	uc := NewTenantUC(repo, nopLogger{})

	tenants, err := uc.Tenants(context.Background())
	require.NoError(t, err)
	require.Len(t, tenants, 2)

	tenant, err := uc.Tenant(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, "B", tenant.Name)
}
