package pgdb

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/laptopmundo/catalog-backend/internal/domain"
	"github.com/laptopmundo/catalog-backend/internal/repository/pgdb/converter"
	"github.com/laptopmundo/catalog-backend/internal/usecase"
	"github.com/laptopmundo/catalog-backend/pkg/e"
	"github.com/laptopmundo/catalog-backend/pkg/tr"
)

var tenantProductColumns = []string{"id", "tenant_id", "product_id", "price", "inventory_count", "is_visible", "created_at"}

// TenantProductRepo реализует репозиторий привязок товаров к тенантам поверх PostgreSQL.
type TenantProductRepo struct {
	pool *pgxpool.Pool
	conv converter.TenantProductConverter
}

func NewTenantProductRepo(pool *pgxpool.Pool, conv converter.TenantProductConverter) *TenantProductRepo {
	return &TenantProductRepo{
		pool: pool,
		conv: conv,
	}
}

func (t *TenantProductRepo) Create(ctx context.Context, link *domain.TenantProduct) (*domain.TenantProduct, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO tenant_products (tenant_id, product_id, price, inventory_count, is_visible)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, tenant_id, product_id, price, inventory_count, is_visible, created_at;
	`

	var model converter.TenantProductModel
	if err := tx.QueryRow(ctx, query, link.TenantID, link.ProductID, link.Price, link.InventoryCount, link.IsVisible).
		Scan(&model.ID, &model.TenantID, &model.ProductID, &model.Price, &model.InventoryCount, &model.IsVisible, &model.CreatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrTenantProductExists)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return t.conv.ToEntity(&model), nil
}

func (t *TenantProductRepo) Update(ctx context.Context, link *domain.TenantProduct) (*domain.TenantProduct, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE tenant_products
		SET price = $1, inventory_count = $2, is_visible = $3
		WHERE tenant_id = $4 AND product_id = $5
		RETURNING id, tenant_id, product_id, price, inventory_count, is_visible, created_at;
	`

	var model converter.TenantProductModel
	if err := tx.QueryRow(ctx, query, link.Price, link.InventoryCount, link.IsVisible, link.TenantID, link.ProductID).
		Scan(&model.ID, &model.TenantID, &model.ProductID, &model.Price, &model.InventoryCount, &model.IsVisible, &model.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrTenantProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return t.conv.ToEntity(&model), nil
}

func (t *TenantProductRepo) DeleteByTenantAndProduct(ctx context.Context, tenantID, productID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query, args := buildDelete("tenant_products", []Cond{Eq("tenant_id", tenantID), Eq("product_id", productID)})
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (t *TenantProductRepo) DeleteByProduct(ctx context.Context, productID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query, args := buildDelete("tenant_products", []Cond{Eq("product_id", productID)})
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (t *TenantProductRepo) GetByTenantAndProduct(ctx context.Context, tenantID, productID int64) (*domain.TenantProduct, error) {
	query, args := buildSelect("tenant_products", tenantProductColumns,
		[]Cond{Eq("tenant_id", tenantID), Eq("product_id", productID)}, "")

	var model converter.TenantProductModel
	if err := t.pool.QueryRow(ctx, query, args...).
		Scan(&model.ID, &model.TenantID, &model.ProductID, &model.Price, &model.InventoryCount, &model.IsVisible, &model.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return t.conv.ToEntity(&model), nil
}

// List возвращает привязки тенанта с серверной частью фильтра каталога:
// видимость и диапазон цен выражаются условиями по этой таблице.
func (t *TenantProductRepo) List(ctx context.Context, tenantID int64, q *usecase.TenantProductQuery) ([]domain.TenantProduct, error) {
	conds := []Cond{Eq("tenant_id", tenantID)}
	if q != nil {
		if q.IsVisible != nil {
			conds = append(conds, Eq("is_visible", *q.IsVisible))
		}
		if q.MinPrice != nil {
			conds = append(conds, Gte("price", *q.MinPrice))
		}
		if q.MaxPrice != nil {
			conds = append(conds, Lte("price", *q.MaxPrice))
		}
	}

	query, args := buildSelect("tenant_products", tenantProductColumns, conds, "id")
	return t.queryLinks(ctx, query, args)
}

func (t *TenantProductRepo) ListVisibleByProducts(ctx context.Context, tenantID int64, productIDs []int64) ([]domain.TenantProduct, error) {
	query, args := buildSelect("tenant_products", tenantProductColumns,
		[]Cond{Eq("tenant_id", tenantID), Eq("is_visible", true), In("product_id", productIDs)}, "id")
	return t.queryLinks(ctx, query, args)
}

func (t *TenantProductRepo) queryLinks(ctx context.Context, query string, args []any) ([]domain.TenantProduct, error) {
	rows, err := t.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.TenantProduct, 0)
	for rows.Next() {
		var model converter.TenantProductModel
		if err := rows.Scan(&model.ID, &model.TenantID, &model.ProductID, &model.Price, &model.InventoryCount, &model.IsVisible, &model.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *t.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
