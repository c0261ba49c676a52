package usecase

import (
	"context"

	"github.com/laptopmundo/catalog-backend/internal/domain"
	"github.com/laptopmundo/catalog-backend/pkg/e"
)

// enrichment — результат батч-обогащения набора товаров: сами товары,
// имена их категорий и URL первичных изображений, всё по id товара.
// Обогащение только декорирует результат: отсутствие категории или
// изображения не исключает товар и не является ошибкой.
type enrichment struct {
	products      map[int64]domain.Product
	categoryNames map[int64]string
	primaryImages map[int64]string
}

// CategoryName возвращает имя категории товара, если она есть.
func (en *enrichment) CategoryName(productID int64) *string {
	product, ok := en.products[productID]
	if !ok || product.CategoryID == nil {
		return nil
	}

	name, ok := en.categoryNames[*product.CategoryID]
	if !ok {
		return nil
	}

	return &name
}

// PrimaryImageURL возвращает URL первичного изображения товара, если оно есть.
func (en *enrichment) PrimaryImageURL(productID int64) *string {
	url, ok := en.primaryImages[productID]
	if !ok {
		return nil
	}

	return &url
}

// enrich выполняет три батч-запроса для набора id товаров: сами товары,
// их категории и первичные изображения. Ни один промах не приводит к ошибке.
func (c *CatalogUseCase) enrich(ctx context.Context, productIDs []int64) (*enrichment, error) {
	const op = "CatalogUseCase.enrich"

	en := &enrichment{
		products:      make(map[int64]domain.Product, len(productIDs)),
		categoryNames: make(map[int64]string),
		primaryImages: make(map[int64]string),
	}
	if len(productIDs) == 0 {
		return en, nil
	}

	products, err := c.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	for _, product := range products {
		en.products[product.ID] = product
	}

	if err := c.enrichCategories(ctx, en, products); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := c.enrichPrimaryImages(ctx, en, productIDs); err != nil {
		return nil, e.Wrap(op, err)
	}

	return en, nil
}

// enrichCategories одним запросом получает все категории, на которые
// ссылаются товары набора.
func (c *CatalogUseCase) enrichCategories(ctx context.Context, en *enrichment, products []domain.Product) error {
	seen := make(map[int64]struct{})
	categoryIDs := make([]int64, 0)
	for _, product := range products {
		if product.CategoryID == nil {
			continue
		}
		if _, ok := seen[*product.CategoryID]; ok {
			continue
		}
		seen[*product.CategoryID] = struct{}{}
		categoryIDs = append(categoryIDs, *product.CategoryID)
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	categories, err := c.categoryRepo.GetByIDs(ctx, categoryIDs)
	if err != nil {
		return err
	}
	for _, category := range categories {
		en.categoryNames[category.ID] = category.Name
	}

	return nil
}

// enrichPrimaryImages одним запросом получает первичные изображения набора.
// Если у товара помечено первичным больше одного изображения (аномалия
// хранилища), остаётся первое встреченное, остальные игнорируются.
func (c *CatalogUseCase) enrichPrimaryImages(ctx context.Context, en *enrichment, productIDs []int64) error {
	images, err := c.imageRepo.ListPrimaryByProducts(ctx, productIDs)
	if err != nil {
		return err
	}

	for _, image := range images {
		if _, ok := en.primaryImages[image.ProductID]; ok {
			continue
		}
		en.primaryImages[image.ProductID] = image.ImageURL
	}

	return nil
}
