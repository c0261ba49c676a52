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

var specificationColumns = []string{"id", "product_id", "name", "value"}

// SpecificationRepo реализует репозиторий характеристик товара поверх PostgreSQL.
type SpecificationRepo struct {
	pool *pgxpool.Pool
	conv converter.SpecificationConverter
}

func NewSpecificationRepo(pool *pgxpool.Pool, conv converter.SpecificationConverter) *SpecificationRepo {
	return &SpecificationRepo{
		pool: pool,
		conv: conv,
	}
}

func (s *SpecificationRepo) Create(ctx context.Context, spec *domain.ProductSpecification) (*domain.ProductSpecification, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO product_specifications (product_id, name, value)
		VALUES ($1, $2, $3)
		RETURNING id, product_id, name, value;
	`

	var model converter.SpecificationModel
	if err := tx.QueryRow(ctx, query, spec.ProductID, spec.Name, spec.Value).
		Scan(&model.ID, &model.ProductID, &model.Name, &model.Value); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

func (s *SpecificationRepo) Update(ctx context.Context, spec *domain.ProductSpecification) (*domain.ProductSpecification, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE product_specifications
		SET name = $1, value = $2
		WHERE id = $3
		RETURNING id, product_id, name, value;
	`

	var model converter.SpecificationModel
	if err := tx.QueryRow(ctx, query, spec.Name, spec.Value, spec.ID).
		Scan(&model.ID, &model.ProductID, &model.Name, &model.Value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSpecificationNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

func (s *SpecificationRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query, args := buildDelete("product_specifications", []Cond{Eq("id", id)})
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *SpecificationRepo) DeleteByProduct(ctx context.Context, productID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query, args := buildDelete("product_specifications", []Cond{Eq("product_id", productID)})
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *SpecificationRepo) GetByID(ctx context.Context, id int64) (*domain.ProductSpecification, error) {
	query, args := buildSelect("product_specifications", specificationColumns, []Cond{Eq("id", id)}, "")

	var model converter.SpecificationModel
	if err := s.pool.QueryRow(ctx, query, args...).
		Scan(&model.ID, &model.ProductID, &model.Name, &model.Value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

func (s *SpecificationRepo) List(ctx context.Context, productID int64) ([]domain.ProductSpecification, error) {
	query, args := buildSelect("product_specifications", specificationColumns,
		[]Cond{Eq("product_id", productID)}, "id")

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.ProductSpecification, 0)
	for rows.Next() {
		var model converter.SpecificationModel
		if err := rows.Scan(&model.ID, &model.ProductID, &model.Name, &model.Value); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *s.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
