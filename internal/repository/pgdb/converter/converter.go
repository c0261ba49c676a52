package converter

import (
	"github.com/laptopmundo/catalog-backend/internal/domain"
	"github.com/laptopmundo/catalog-backend/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter struct{}

func (ProductConverter) ToEntity(model *ProductModel) *domain.Product {
	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CategoryID:  model.CategoryID,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// TenantProductConverter преобразует сущности TenantProduct между domain и моделью PostgreSQL.
type TenantProductConverter struct{}

func (TenantProductConverter) ToEntity(model *TenantProductModel) *domain.TenantProduct {
	return &domain.TenantProduct{
		ID:             model.ID,
		TenantID:       model.TenantID,
		ProductID:      model.ProductID,
		Price:          model.Price,
		InventoryCount: model.InventoryCount,
		IsVisible:      model.IsVisible,
		CreatedAt:      model.CreatedAt,
	}
}

// VariantConverter преобразует сущности ProductVariant между domain и моделью PostgreSQL.
type VariantConverter struct{}

func (VariantConverter) ToEntity(model *VariantModel) *domain.ProductVariant {
	return &domain.ProductVariant{
		ID:             model.ID,
		ProductID:      model.ProductID,
		Sku:            model.Sku,
		Size:           model.Size,
		Color:          model.Color,
		Model:          model.Model,
		Price:          model.Price,
		InventoryCount: model.InventoryCount,
		IsActive:       model.IsActive,
		CreatedAt:      model.CreatedAt,
	}
}

// SpecificationConverter преобразует сущности ProductSpecification между domain и моделью PostgreSQL.
type SpecificationConverter struct{}

func (SpecificationConverter) ToEntity(model *SpecificationModel) *domain.ProductSpecification {
	return &domain.ProductSpecification{
		ID:        model.ID,
		ProductID: model.ProductID,
		Name:      model.Name,
		Value:     model.Value,
	}
}

// ProductImageConverter преобразует сущности ProductImage между domain и моделью PostgreSQL.
type ProductImageConverter struct{}

func (ProductImageConverter) ToEntity(model *ProductImageModel) *domain.ProductImage {
	return &domain.ProductImage{
		ID:        model.ID,
		ProductID: model.ProductID,
		ImageURL:  model.ImageURL,
		IsPrimary: model.IsPrimary,
		CreatedAt: model.CreatedAt,
	}
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter struct{}

func (CategoryConverter) ToEntity(model *CategoryModel) *domain.Category {
	return &domain.Category{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
	}
}

// TenantConverter преобразует сущности Tenant между domain и моделью PostgreSQL.
type TenantConverter struct{}

func (TenantConverter) ToEntity(model *TenantModel) *domain.Tenant {
	return &domain.Tenant{
		ID:           model.ID,
		Name:         model.Name,
		Domain:       model.Domain,
		Description:  model.Description,
		BusinessType: model.BusinessType,
		IsActive:     model.IsActive,
		CreatedAt:    model.CreatedAt,
	}
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter struct{}

func (OutboxEventConverter) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		ProductID:   entity.ProductID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (OutboxEventConverter) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		ProductID:   model.ProductID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverter) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	result := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		result = append(result, c.ToEntity(model))
	}
	return result
}
