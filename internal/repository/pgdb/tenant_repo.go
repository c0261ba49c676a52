package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/laptopmundo/catalog-backend/internal/domain"
	"github.com/laptopmundo/catalog-backend/internal/repository/pgdb/converter"
	"github.com/laptopmundo/catalog-backend/pkg/e"
)

var tenantColumns = []string{"id", "name", "domain", "description", "business_type", "is_active", "created_at"}

// TenantRepo реализует репозиторий тенантов поверх PostgreSQL.
// Записи тенантов изменяются по одной, поэтому транзакция не требуется.
type TenantRepo struct {
	pool *pgxpool.Pool
	conv converter.TenantConverter
}

func NewTenantRepo(pool *pgxpool.Pool, conv converter.TenantConverter) *TenantRepo {
	return &TenantRepo{pool: pool, conv: conv}
}

func (t *TenantRepo) Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	query := `
		INSERT INTO tenants (name, domain, description, business_type, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, domain, description, business_type, is_active, created_at;
	`

	var model converter.TenantModel
	if err := t.pool.QueryRow(ctx, query,
		tenant.Name, tenant.Domain, tenant.Description, tenant.BusinessType, tenant.IsActive,
	).Scan(
		&model.ID, &model.Name, &model.Domain, &model.Description,
		&model.BusinessType, &model.IsActive, &model.CreatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return t.conv.ToEntity(&model), nil
}

func (t *TenantRepo) Update(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	query := `
		UPDATE tenants
		SET name = $1, domain = $2, description = $3, business_type = $4, is_active = $5
		WHERE id = $6
		RETURNING id, name, domain, description, business_type, is_active, created_at;
	`

	var model converter.TenantModel
	if err := t.pool.QueryRow(ctx, query,
		tenant.Name, tenant.Domain, tenant.Description, tenant.BusinessType, tenant.IsActive, tenant.ID,
	).Scan(
		&model.ID, &model.Name, &model.Domain, &model.Description,
		&model.BusinessType, &model.IsActive, &model.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrTenantNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return t.conv.ToEntity(&model), nil
}

func (t *TenantRepo) Delete(ctx context.Context, id int64) error {
	query, args := buildDelete("tenants", []Cond{Eq("id", id)})
	if _, err := t.pool.Exec(ctx, query, args...); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (t *TenantRepo) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	query, args := buildSelect("tenants", tenantColumns, []Cond{Eq("id", id)}, "")

	var model converter.TenantModel
	if err := t.pool.QueryRow(ctx, query, args...).Scan(
		&model.ID, &model.Name, &model.Domain, &model.Description,
		&model.BusinessType, &model.IsActive, &model.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return t.conv.ToEntity(&model), nil
}

func (t *TenantRepo) List(ctx context.Context) ([]domain.Tenant, error) {
	query, args := buildSelect("tenants", tenantColumns, nil, "id")

	rows, err := t.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Tenant, 0)
	for rows.Next() {
		var model converter.TenantModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Domain, &model.Description,
			&model.BusinessType, &model.IsActive, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *t.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
