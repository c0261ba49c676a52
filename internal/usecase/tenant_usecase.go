package usecase

import (
	"context"
	"strings"

	"github.com/laptopmundo/catalog-backend/internal/domain"
	"github.com/laptopmundo/catalog-backend/pkg/e"
	"github.com/laptopmundo/catalog-backend/pkg/logger"
)

// TenantUseCase — управление тенантами. Ядро каталога тенантов не изменяет,
// эти операции обслуживают административную поверхность.
type TenantUseCase struct {
	tenantRepo TenantRepository
	logger     logger.Logger
}

func NewTenantUC(tenantRepo TenantRepository, logger logger.Logger) *TenantUseCase {
	return &TenantUseCase{tenantRepo: tenantRepo, logger: logger}
}

func (t *TenantUseCase) CreateTenant(ctx context.Context, req *CreateTenantReq) (*domain.Tenant, error) {
	const op = "TenantUseCase.CreateTenant"

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Domain) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	tenant, err := t.tenantRepo.Create(ctx, domain.NewTenant(req.Name, req.Domain, req.Description, req.BusinessType))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return tenant, nil
}

func (t *TenantUseCase) UpdateTenant(ctx context.Context, tenantID int64, req *UpdateTenantReq) (*domain.Tenant, error) {
	const op = "TenantUseCase.UpdateTenant"

	existing, err := t.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if existing == nil {
		return nil, e.Wrap(op, e.ErrTenantNotFound)
	}

	existing.Name = req.Name
	existing.Domain = req.Domain
	existing.Description = req.Description
	existing.BusinessType = req.BusinessType
	existing.IsActive = req.IsActive

	updated, err := t.tenantRepo.Update(ctx, existing)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

func (t *TenantUseCase) DeleteTenant(ctx context.Context, tenantID int64) error {
	const op = "TenantUseCase.DeleteTenant"

	if err := t.tenantRepo.Delete(ctx, tenantID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (t *TenantUseCase) Tenant(ctx context.Context, tenantID int64) (*domain.Tenant, error) {
	const op = "TenantUseCase.Tenant"

	tenant, err := t.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return tenant, nil
}

func (t *TenantUseCase) Tenants(ctx context.Context) ([]domain.Tenant, error) {
	const op = "TenantUseCase.Tenants"

	tenants, err := t.tenantRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return tenants, nil
}
