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

var categoryColumns = []string{"id", "name", "description"}

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description;
	`

	var model converter.CategoryModel
	if err := tx.QueryRow(ctx, query, category.Name, category.Description).
		Scan(&model.ID, &model.Name, &model.Description); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE categories
		SET name = $1, description = $2
		WHERE id = $3
		RETURNING id, name, description;
	`

	var model converter.CategoryModel
	if err := tx.QueryRow(ctx, query, category.Name, category.Description, category.ID).
		Scan(&model.ID, &model.Name, &model.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query, args := buildDelete("categories", []Cond{Eq("id", id)})
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query, args := buildSelect("categories", categoryColumns, []Cond{Eq("id", id)}, "")

	var model converter.CategoryModel
	if err := c.pool.QueryRow(ctx, query, args...).
		Scan(&model.ID, &model.Name, &model.Description); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Category, error) {
	query, args := buildSelect("categories", categoryColumns, []Cond{In("id", ids)}, "id")
	return c.queryCategories(ctx, query, args)
}

func (c *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	query, args := buildSelect("categories", categoryColumns, nil, "name")
	return c.queryCategories(ctx, query, args)
}

func (c *CategoryRepo) queryCategories(ctx context.Context, query string, args []any) ([]domain.Category, error) {
	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Description); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *c.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
