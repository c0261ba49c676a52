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
	"github.com/laptopmundo/catalog-backend/pkg/tr"
)

var variantColumns = []string{"id", "product_id", "sku", "size", "color", "model", "price", "inventory_count", "is_active", "created_at"}

// VariantRepo реализует репозиторий вариантов товара поверх PostgreSQL.
type VariantRepo struct {
	pool *pgxpool.Pool
	conv converter.VariantConverter
}

func NewVariantRepo(pool *pgxpool.Pool, conv converter.VariantConverter) *VariantRepo {
	return &VariantRepo{
		pool: pool,
		conv: conv,
	}
}

func (v *VariantRepo) Create(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO product_variants (product_id, sku, size, color, model, price, inventory_count, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, product_id, sku, size, color, model, price, inventory_count, is_active, created_at;
	`

	var model converter.VariantModel
	if err := tx.QueryRow(ctx, query,
		variant.ProductID, variant.Sku, variant.Size, variant.Color, variant.Model,
		variant.Price, variant.InventoryCount, variant.IsActive,
	).Scan(
		&model.ID, &model.ProductID, &model.Sku, &model.Size, &model.Color, &model.Model,
		&model.Price, &model.InventoryCount, &model.IsActive, &model.CreatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(&model), nil
}

func (v *VariantRepo) Update(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE product_variants
		SET sku = $1, size = $2, color = $3, model = $4, price = $5, inventory_count = $6, is_active = $7
		WHERE id = $8
		RETURNING id, product_id, sku, size, color, model, price, inventory_count, is_active, created_at;
	`

	var model converter.VariantModel
	if err := tx.QueryRow(ctx, query,
		variant.Sku, variant.Size, variant.Color, variant.Model,
		variant.Price, variant.InventoryCount, variant.IsActive, variant.ID,
	).Scan(
		&model.ID, &model.ProductID, &model.Sku, &model.Size, &model.Color, &model.Model,
		&model.Price, &model.InventoryCount, &model.IsActive, &model.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrVariantNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(&model), nil
}

func (v *VariantRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query, args := buildDelete("product_variants", []Cond{Eq("id", id)})
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (v *VariantRepo) DeleteByProduct(ctx context.Context, productID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query, args := buildDelete("product_variants", []Cond{Eq("product_id", productID)})
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (v *VariantRepo) GetByID(ctx context.Context, id int64) (*domain.ProductVariant, error) {
	query, args := buildSelect("product_variants", variantColumns, []Cond{Eq("id", id)}, "")

	var model converter.VariantModel
	if err := v.pool.QueryRow(ctx, query, args...).Scan(
		&model.ID, &model.ProductID, &model.Sku, &model.Size, &model.Color, &model.Model,
		&model.Price, &model.InventoryCount, &model.IsActive, &model.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(&model), nil
}

func (v *VariantRepo) ListActive(ctx context.Context, productID int64) ([]domain.ProductVariant, error) {
	query, args := buildSelect("product_variants", variantColumns,
		[]Cond{Eq("product_id", productID), Eq("is_active", true)}, "id")

	rows, err := v.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.ProductVariant, 0)
	for rows.Next() {
		var model converter.VariantModel
		if err := rows.Scan(
			&model.ID, &model.ProductID, &model.Sku, &model.Size, &model.Color, &model.Model,
			&model.Price, &model.InventoryCount, &model.IsActive, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *v.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
