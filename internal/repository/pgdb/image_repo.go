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

var productImageColumns = []string{"id", "product_id", "image_url", "is_primary", "created_at"}

// ProductImageRepo реализует репозиторий записей об изображениях товара поверх
// PostgreSQL. Сами бинарные объекты лежат в S3, здесь хранятся только URL.
type ProductImageRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductImageConverter
}

func NewProductImageRepo(pool *pgxpool.Pool, conv converter.ProductImageConverter) *ProductImageRepo {
	return &ProductImageRepo{
		pool: pool,
		conv: conv,
	}
}

func (p *ProductImageRepo) Create(ctx context.Context, image *domain.ProductImage) (*domain.ProductImage, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO product_images (product_id, image_url, is_primary)
		VALUES ($1, $2, $3)
		RETURNING id, product_id, image_url, is_primary, created_at;
	`

	var model converter.ProductImageModel
	if err := tx.QueryRow(ctx, query, image.ProductID, image.ImageURL, image.IsPrimary).
		Scan(&model.ID, &model.ProductID, &model.ImageURL, &model.IsPrimary, &model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductImageRepo) Update(ctx context.Context, image *domain.ProductImage) (*domain.ProductImage, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE product_images
		SET image_url = $1, is_primary = $2
		WHERE id = $3
		RETURNING id, product_id, image_url, is_primary, created_at;
	`

	var model converter.ProductImageModel
	if err := tx.QueryRow(ctx, query, image.ImageURL, image.IsPrimary, image.ID).
		Scan(&model.ID, &model.ProductID, &model.ImageURL, &model.IsPrimary, &model.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrImageNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductImageRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query, args := buildDelete("product_images", []Cond{Eq("id", id)})
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *ProductImageRepo) DeleteByProduct(ctx context.Context, productID int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query, args := buildDelete("product_images", []Cond{Eq("product_id", productID)})
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *ProductImageRepo) GetByID(ctx context.Context, id int64) (*domain.ProductImage, error) {
	query, args := buildSelect("product_images", productImageColumns, []Cond{Eq("id", id)}, "")

	var model converter.ProductImageModel
	if err := p.pool.QueryRow(ctx, query, args...).
		Scan(&model.ID, &model.ProductID, &model.ImageURL, &model.IsPrimary, &model.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductImageRepo) List(ctx context.Context, productID int64) ([]domain.ProductImage, error) {
	query, args := buildSelect("product_images", productImageColumns,
		[]Cond{Eq("product_id", productID)}, "id")
	return p.queryImages(ctx, query, args)
}

// ListPrimaryByProducts возвращает первичные изображения набора товаров
// одним запросом; порядок стабилен (по id).
func (p *ProductImageRepo) ListPrimaryByProducts(ctx context.Context, productIDs []int64) ([]domain.ProductImage, error) {
	query, args := buildSelect("product_images", productImageColumns,
		[]Cond{In("product_id", productIDs), Eq("is_primary", true)}, "id")
	return p.queryImages(ctx, query, args)
}

func (p *ProductImageRepo) queryImages(ctx context.Context, query string, args []any) ([]domain.ProductImage, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]domain.ProductImage, 0)
	for rows.Next() {
		var model converter.ProductImageModel
		if err := rows.Scan(&model.ID, &model.ProductID, &model.ImageURL, &model.IsPrimary, &model.CreatedAt); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, *p.conv.ToEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
