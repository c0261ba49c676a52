package usecase

import (
	"context"

	"github.com/laptopmundo/catalog-backend/internal/domain"
)

// Репозитории сущностного хранилища. Каждый метод работает ровно с одной
// коллекцией; соединение данных между коллекциями выполняется в usecase-слое.
// Отсутствие записи — это nil-результат или пустой срез, а не ошибка.

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
}

// TenantProductQuery — серверная часть фильтра каталога: всё, что выражается
// условиями по одной коллекции tenant_products.
type TenantProductQuery struct {
	IsVisible *bool
	MinPrice  *int64
	MaxPrice  *int64
}

type TenantProductRepository interface {
	Create(ctx context.Context, link *domain.TenantProduct) (*domain.TenantProduct, error)
	Update(ctx context.Context, link *domain.TenantProduct) (*domain.TenantProduct, error)
	DeleteByTenantAndProduct(ctx context.Context, tenantID, productID int64) error
	DeleteByProduct(ctx context.Context, productID int64) error
	GetByTenantAndProduct(ctx context.Context, tenantID, productID int64) (*domain.TenantProduct, error)
	List(ctx context.Context, tenantID int64, q *TenantProductQuery) ([]domain.TenantProduct, error)
	ListVisibleByProducts(ctx context.Context, tenantID int64, productIDs []int64) ([]domain.TenantProduct, error)
}

type VariantRepository interface {
	Create(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error)
	Update(ctx context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error)
	Delete(ctx context.Context, id int64) error
	DeleteByProduct(ctx context.Context, productID int64) error
	GetByID(ctx context.Context, id int64) (*domain.ProductVariant, error)
	ListActive(ctx context.Context, productID int64) ([]domain.ProductVariant, error)
}

type SpecificationRepository interface {
	Create(ctx context.Context, spec *domain.ProductSpecification) (*domain.ProductSpecification, error)
	Update(ctx context.Context, spec *domain.ProductSpecification) (*domain.ProductSpecification, error)
	Delete(ctx context.Context, id int64) error
	DeleteByProduct(ctx context.Context, productID int64) error
	GetByID(ctx context.Context, id int64) (*domain.ProductSpecification, error)
	List(ctx context.Context, productID int64) ([]domain.ProductSpecification, error)
}

type ProductImageRepository interface {
	Create(ctx context.Context, image *domain.ProductImage) (*domain.ProductImage, error)
	Update(ctx context.Context, image *domain.ProductImage) (*domain.ProductImage, error)
	Delete(ctx context.Context, id int64) error
	DeleteByProduct(ctx context.Context, productID int64) error
	GetByID(ctx context.Context, id int64) (*domain.ProductImage, error)
	List(ctx context.Context, productID int64) ([]domain.ProductImage, error)
	ListPrimaryByProducts(ctx context.Context, productIDs []int64) ([]domain.ProductImage, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
}

type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) (*domain.Tenant, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Tenant, error)
	List(ctx context.Context) ([]domain.Tenant, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetDetail(ctx context.Context, tenantID, productID int64) (*ProductDetail, error)
	SetDetail(ctx context.Context, tenantID int64, detail *ProductDetail) error
	DeleteProduct(ctx context.Context, productID int64) error
	DeleteTenantProduct(ctx context.Context, tenantID, productID int64) error
}
