package usecase

import (
	"context"

	"github.com/laptopmundo/catalog-backend/internal/domain"
)

// CatalogUC — публичная витрина: чтение каталога в проекции тенанта.
type CatalogUC interface {
	Products(ctx context.Context, tenantID int64, filter *CatalogFilter) (*ProductPage, error)
	Search(ctx context.Context, tenantID int64, query string, page, pageSize int) (*ProductPage, error)
	Featured(ctx context.Context, tenantID int64) ([]ProductView, error)
	Detail(ctx context.Context, tenantID, productID int64) (*ProductDetail, error)
	ProductsByCategory(ctx context.Context, tenantID, categoryID int64, page, pageSize int) (*ProductPage, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Category(ctx context.Context, id int64) (*domain.Category, error)
}

// AdminUC — административное управление каталогом и привязками тенантов.
type AdminUC interface {
	CreateProduct(ctx context.Context, req *CreateProductReq) (*AdminProductRes, error)
	UpdateProduct(ctx context.Context, productID int64, req *UpdateProductReq) (*AdminProductRes, error)
	DeleteProduct(ctx context.Context, productID int64) error

	CreateVariant(ctx context.Context, req *CreateVariantReq) (*domain.ProductVariant, error)
	UpdateVariant(ctx context.Context, variantID int64, req *UpdateVariantReq) (*domain.ProductVariant, error)
	DeleteVariant(ctx context.Context, variantID int64) error

	CreateSpecification(ctx context.Context, req *CreateSpecificationReq) (*domain.ProductSpecification, error)
	UpdateSpecification(ctx context.Context, specID int64, req *UpdateSpecificationReq) (*domain.ProductSpecification, error)
	DeleteSpecification(ctx context.Context, specID int64) error

	CreateImage(ctx context.Context, req *CreateImageReq) (*domain.ProductImage, error)
	UpdateImage(ctx context.Context, imageID int64, req *UpdateImageReq) (*domain.ProductImage, error)
	DeleteImage(ctx context.Context, imageID int64) error
	UploadProductImages(ctx context.Context, productID int64, images []UploadImage) ([]domain.ProductImage, error)

	CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID int64, req *UpdateCategoryReq) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error

	AssignTenantProduct(ctx context.Context, tenantID int64, req *AssignTenantProductReq) (*ProductView, error)
	UpdateTenantProduct(ctx context.Context, tenantID, productID int64, req *UpdateTenantProductReq) (*ProductView, error)
	RemoveTenantProduct(ctx context.Context, tenantID, productID int64) error
}

// TenantUC — управление тенантами (витринами).
type TenantUC interface {
	CreateTenant(ctx context.Context, req *CreateTenantReq) (*domain.Tenant, error)
	UpdateTenant(ctx context.Context, tenantID int64, req *UpdateTenantReq) (*domain.Tenant, error)
	DeleteTenant(ctx context.Context, tenantID int64) error
	Tenant(ctx context.Context, tenantID int64) (*domain.Tenant, error)
	Tenants(ctx context.Context) ([]domain.Tenant, error)
}
