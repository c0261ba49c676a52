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

var productColumns = []string{"id", "name", "description", "category_id", "created_at", "updated_at"}

// ProductRepo реализует репозиторий товаров глобального каталога поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (name, description, category_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, category_id, created_at, updated_at;
	`

	var model converter.ProductModel
	if err := tx.QueryRow(ctx, query, product.Name, product.Description, product.CategoryID).
		Scan(&model.ID, &model.Name, &model.Description, &model.CategoryID, &model.CreatedAt, &model.UpdatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET name = $1, description = $2, category_id = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, name, description, category_id, created_at, updated_at;
	`

	var model converter.ProductModel
	if err := tx.QueryRow(ctx, query, product.Name, product.Description, product.CategoryID, product.ID).
		Scan(&model.ID, &model.Name, &model.Description, &model.CategoryID, &model.CreatedAt, &model.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query, args := buildDelete("products", []Cond{Eq("id", id)})
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query, args := buildSelect("products", productColumns, []Cond{Eq("id", id)}, "")

	var model converter.ProductModel
	if err := p.pool.QueryRow(ctx, query, args...).
		Scan(&model.ID, &model.Name, &model.Description, &model.CategoryID, &model.CreatedAt, &model.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	query, args := buildSelect("products", productColumns, []Cond{In("id", ids)}, "id")
	return p.queryProducts(ctx, query, args)
}

func (p *ProductRepo) GetByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	query, args := buildSelect("products", productColumns, []Cond{Eq("category_id", categoryID)}, "id")
	return p.queryProducts(ctx, query, args)
}

func (p *ProductRepo) queryProducts(ctx context.Context, query string, args []any) ([]domain.Product, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Description, &model.CategoryID, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *p.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
