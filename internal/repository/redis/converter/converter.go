package converter

import (
	"github.com/laptopmundo/catalog-backend/internal/domain"
	"github.com/laptopmundo/catalog-backend/internal/usecase"
)

// ProductDetailConverter преобразует карточку товара между usecase и Redis-моделью.
type ProductDetailConverter struct{}

func (c ProductDetailConverter) ToRedisModel(detail *usecase.ProductDetail) *ProductDetailRedisModel {
	variants := make([]VariantRedisModel, 0, len(detail.Variants))
	for _, v := range detail.Variants {
		variants = append(variants, VariantRedisModel{
			ID:             v.ID,
			ProductID:      v.ProductID,
			Sku:            v.Sku,
			Size:           v.Size,
			Color:          v.Color,
			Model:          v.Model,
			Price:          v.Price,
			InventoryCount: v.InventoryCount,
			IsActive:       v.IsActive,
			CreatedAt:      v.CreatedAt,
		})
	}

	specs := make([]SpecRedisModel, 0, len(detail.Specifications))
	for _, s := range detail.Specifications {
		specs = append(specs, SpecRedisModel{
			ID:        s.ID,
			ProductID: s.ProductID,
			Name:      s.Name,
			Value:     s.Value,
		})
	}

	images := make([]ImageRedisModel, 0, len(detail.Images))
	for _, i := range detail.Images {
		images = append(images, ImageRedisModel{
			ID:        i.ID,
			ProductID: i.ProductID,
			ImageURL:  i.ImageURL,
			IsPrimary: i.IsPrimary,
			CreatedAt: i.CreatedAt,
		})
	}

	return &ProductDetailRedisModel{
		ID:              detail.ID,
		Name:            detail.Name,
		Description:     detail.Description,
		CategoryID:      detail.CategoryID,
		CategoryName:    detail.CategoryName,
		Price:           detail.Price,
		InventoryCount:  detail.InventoryCount,
		IsVisible:       detail.IsVisible,
		PrimaryImageURL: detail.PrimaryImageURL,
		Variants:        variants,
		Specifications:  specs,
		Images:          images,
	}
}

func (c ProductDetailConverter) ToUseCase(model *ProductDetailRedisModel) *usecase.ProductDetail {
	variants := make([]domain.ProductVariant, 0, len(model.Variants))
	for _, v := range model.Variants {
		variants = append(variants, domain.ProductVariant{
			ID:             v.ID,
			ProductID:      v.ProductID,
			Sku:            v.Sku,
			Size:           v.Size,
			Color:          v.Color,
			Model:          v.Model,
			Price:          v.Price,
			InventoryCount: v.InventoryCount,
			IsActive:       v.IsActive,
			CreatedAt:      v.CreatedAt,
		})
	}

	specs := make([]domain.ProductSpecification, 0, len(model.Specifications))
	for _, s := range model.Specifications {
		specs = append(specs, domain.ProductSpecification{
			ID:        s.ID,
			ProductID: s.ProductID,
			Name:      s.Name,
			Value:     s.Value,
		})
	}

	images := make([]domain.ProductImage, 0, len(model.Images))
	for _, i := range model.Images {
		images = append(images, domain.ProductImage{
			ID:        i.ID,
			ProductID: i.ProductID,
			ImageURL:  i.ImageURL,
			IsPrimary: i.IsPrimary,
			CreatedAt: i.CreatedAt,
		})
	}

	return &usecase.ProductDetail{
		ProductView: usecase.ProductView{
			ID:              model.ID,
			Name:            model.Name,
			Description:     model.Description,
			CategoryID:      model.CategoryID,
			CategoryName:    model.CategoryName,
			Price:           model.Price,
			InventoryCount:  model.InventoryCount,
			IsVisible:       model.IsVisible,
			PrimaryImageURL: model.PrimaryImageURL,
		},
		Variants:       variants,
		Specifications: specs,
		Images:         images,
	}
}
