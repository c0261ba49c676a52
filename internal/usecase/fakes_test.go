package usecase

import (
	"context"
	"sync"

	"github.com/laptopmundo/catalog-backend/internal/domain"
)

// Фейки портов для тестов. Хранят данные в памяти и повторяют семантику
// хранилища: отсутствие записи — nil или пустой срез, не ошибка.

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakeProductRepo struct {
	products map[int64]domain.Product
	nextID   int64
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[int64]domain.Product)}
	for _, p := range products {
		r.products[p.ID] = p
		if p.ID > r.nextID {
			r.nextID = p.ID
		}
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.nextID++
	created := *product
	created.ID = r.nextID
	r.products[created.ID] = created
	return &created, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.products[product.ID] = *product
	updated := *product
	return &updated, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *fakeProductRepo) GetByIDs(_ context.Context, ids []int64) ([]domain.Product, error) {
	result := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := r.products[id]; ok {
			result = append(result, product)
		}
	}
	return result, nil
}

func (r *fakeProductRepo) GetByCategory(_ context.Context, categoryID int64) ([]domain.Product, error) {
	result := make([]domain.Product, 0)
	for id := int64(1); id <= r.nextID; id++ {
		product, ok := r.products[id]
		if !ok {
			continue
		}
		if product.CategoryID != nil && *product.CategoryID == categoryID {
			result = append(result, product)
		}
	}
	return result, nil
}

type fakeTenantProductRepo struct {
	links     []domain.TenantProduct
	listCalls int
}

func (r *fakeTenantProductRepo) Create(_ context.Context, link *domain.TenantProduct) (*domain.TenantProduct, error) {
	created := *link
	created.ID = int64(len(r.links) + 1)
	r.links = append(r.links, created)
	return &created, nil
}

func (r *fakeTenantProductRepo) Update(_ context.Context, link *domain.TenantProduct) (*domain.TenantProduct, error) {
	for i := range r.links {
		if r.links[i].ID == link.ID {
			r.links[i] = *link
		}
	}
	updated := *link
	return &updated, nil
}

func (r *fakeTenantProductRepo) DeleteByTenantAndProduct(_ context.Context, tenantID, productID int64) error {
	kept := r.links[:0]
	for _, link := range r.links {
		if link.TenantID == tenantID && link.ProductID == productID {
			continue
		}
		kept = append(kept, link)
	}
	r.links = kept
	return nil
}

func (r *fakeTenantProductRepo) DeleteByProduct(_ context.Context, productID int64) error {
	kept := r.links[:0]
	for _, link := range r.links {
		if link.ProductID != productID {
			kept = append(kept, link)
		}
	}
	r.links = kept
	return nil
}

func (r *fakeTenantProductRepo) GetByTenantAndProduct(_ context.Context, tenantID, productID int64) (*domain.TenantProduct, error) {
	for _, link := range r.links {
		if link.TenantID == tenantID && link.ProductID == productID {
			found := link
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeTenantProductRepo) List(_ context.Context, tenantID int64, q *TenantProductQuery) ([]domain.TenantProduct, error) {
	r.listCalls++
	result := make([]domain.TenantProduct, 0)
	for _, link := range r.links {
		if link.TenantID != tenantID {
			continue
		}
		if q != nil {
			if q.IsVisible != nil && link.IsVisible != *q.IsVisible {
				continue
			}
			if q.MinPrice != nil && link.Price < *q.MinPrice {
				continue
			}
			if q.MaxPrice != nil && link.Price > *q.MaxPrice {
				continue
			}
		}
		result = append(result, link)
	}
	return result, nil
}

func (r *fakeTenantProductRepo) ListVisibleByProducts(_ context.Context, tenantID int64, productIDs []int64) ([]domain.TenantProduct, error) {
	r.listCalls++
	wanted := make(map[int64]struct{}, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = struct{}{}
	}
	result := make([]domain.TenantProduct, 0)
	for _, link := range r.links {
		if link.TenantID != tenantID || !link.IsVisible {
			continue
		}
		if _, ok := wanted[link.ProductID]; ok {
			result = append(result, link)
		}
	}
	return result, nil
}

type fakeVariantRepo struct {
	variants []domain.ProductVariant
}

func (r *fakeVariantRepo) Create(_ context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error) {
	created := *variant
	created.ID = int64(len(r.variants) + 1)
	r.variants = append(r.variants, created)
	return &created, nil
}

func (r *fakeVariantRepo) Update(_ context.Context, variant *domain.ProductVariant) (*domain.ProductVariant, error) {
	for i := range r.variants {
		if r.variants[i].ID == variant.ID {
			r.variants[i] = *variant
		}
	}
	updated := *variant
	return &updated, nil
}

func (r *fakeVariantRepo) Delete(_ context.Context, id int64) error {
	kept := r.variants[:0]
	for _, variant := range r.variants {
		if variant.ID != id {
			kept = append(kept, variant)
		}
	}
	r.variants = kept
	return nil
}

func (r *fakeVariantRepo) DeleteByProduct(_ context.Context, productID int64) error {
	kept := r.variants[:0]
	for _, variant := range r.variants {
		if variant.ProductID != productID {
			kept = append(kept, variant)
		}
	}
	r.variants = kept
	return nil
}

func (r *fakeVariantRepo) GetByID(_ context.Context, id int64) (*domain.ProductVariant, error) {
	for _, variant := range r.variants {
		if variant.ID == id {
			found := variant
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeVariantRepo) ListActive(_ context.Context, productID int64) ([]domain.ProductVariant, error) {
	result := make([]domain.ProductVariant, 0)
	for _, variant := range r.variants {
		if variant.ProductID == productID && variant.IsActive {
			result = append(result, variant)
		}
	}
	return result, nil
}

type fakeSpecRepo struct {
	specs []domain.ProductSpecification
}

func (r *fakeSpecRepo) Create(_ context.Context, spec *domain.ProductSpecification) (*domain.ProductSpecification, error) {
	created := *spec
	created.ID = int64(len(r.specs) + 1)
	r.specs = append(r.specs, created)
	return &created, nil
}

func (r *fakeSpecRepo) Update(_ context.Context, spec *domain.ProductSpecification) (*domain.ProductSpecification, error) {
	for i := range r.specs {
		if r.specs[i].ID == spec.ID {
			r.specs[i] = *spec
		}
	}
	updated := *spec
	return &updated, nil
}

func (r *fakeSpecRepo) Delete(_ context.Context, id int64) error {
	kept := r.specs[:0]
	for _, spec := range r.specs {
		if spec.ID != id {
			kept = append(kept, spec)
		}
	}
	r.specs = kept
	return nil
}

func (r *fakeSpecRepo) DeleteByProduct(_ context.Context, productID int64) error {
	kept := r.specs[:0]
	for _, spec := range r.specs {
		if spec.ProductID != productID {
			kept = append(kept, spec)
		}
	}
	r.specs = kept
	return nil
}

func (r *fakeSpecRepo) GetByID(_ context.Context, id int64) (*domain.ProductSpecification, error) {
	for _, spec := range r.specs {
		if spec.ID == id {
			found := spec
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeSpecRepo) List(_ context.Context, productID int64) ([]domain.ProductSpecification, error) {
	result := make([]domain.ProductSpecification, 0)
	for _, spec := range r.specs {
		if spec.ProductID == productID {
			result = append(result, spec)
		}
	}
	return result, nil
}

type fakeImageRepo struct {
	images []domain.ProductImage
}

func (r *fakeImageRepo) Create(_ context.Context, image *domain.ProductImage) (*domain.ProductImage, error) {
	created := *image
	created.ID = int64(len(r.images) + 1)
	r.images = append(r.images, created)
	return &created, nil
}

func (r *fakeImageRepo) Update(_ context.Context, image *domain.ProductImage) (*domain.ProductImage, error) {
	for i := range r.images {
		if r.images[i].ID == image.ID {
			r.images[i] = *image
		}
	}
	updated := *image
	return &updated, nil
}

func (r *fakeImageRepo) Delete(_ context.Context, id int64) error {
	kept := r.images[:0]
	for _, image := range r.images {
		if image.ID != id {
			kept = append(kept, image)
		}
	}
	r.images = kept
	return nil
}

func (r *fakeImageRepo) DeleteByProduct(_ context.Context, productID int64) error {
	kept := r.images[:0]
	for _, image := range r.images {
		if image.ProductID != productID {
			kept = append(kept, image)
		}
	}
	r.images = kept
	return nil
}

func (r *fakeImageRepo) GetByID(_ context.Context, id int64) (*domain.ProductImage, error) {
	for _, image := range r.images {
		if image.ID == id {
			found := image
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeImageRepo) List(_ context.Context, productID int64) ([]domain.ProductImage, error) {
	result := make([]domain.ProductImage, 0)
	for _, image := range r.images {
		if image.ProductID == productID {
			result = append(result, image)
		}
	}
	return result, nil
}

func (r *fakeImageRepo) ListPrimaryByProducts(_ context.Context, productIDs []int64) ([]domain.ProductImage, error) {
	wanted := make(map[int64]struct{}, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = struct{}{}
	}
	result := make([]domain.ProductImage, 0)
	for _, image := range r.images {
		if !image.IsPrimary {
			continue
		}
		if _, ok := wanted[image.ProductID]; ok {
			result = append(result, image)
		}
	}
	return result, nil
}

type fakeCategoryRepo struct {
	categories map[int64]domain.Category
	nextID     int64
}

func newFakeCategoryRepo(categories ...domain.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[int64]domain.Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
		if c.ID > r.nextID {
			r.nextID = c.ID
		}
	}
	return r
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	r.nextID++
	created := *category
	created.ID = r.nextID
	r.categories[created.ID] = created
	return &created, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *domain.Category) (*domain.Category, error) {
	r.categories[category.ID] = *category
	updated := *category
	return &updated, nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (r *fakeCategoryRepo) GetByIDs(_ context.Context, ids []int64) ([]domain.Category, error) {
	result := make([]domain.Category, 0, len(ids))
	for _, id := range ids {
		if category, ok := r.categories[id]; ok {
			result = append(result, category)
		}
	}
	return result, nil
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	result := make([]domain.Category, 0, len(r.categories))
	for id := int64(1); id <= r.nextID; id++ {
		if category, ok := r.categories[id]; ok {
			result = append(result, category)
		}
	}
	return result, nil
}

type fakeTenantRepo struct {
	tenants map[int64]domain.Tenant
	nextID  int64
}

func newFakeTenantRepo(tenants ...domain.Tenant) *fakeTenantRepo {
	r := &fakeTenantRepo{tenants: make(map[int64]domain.Tenant)}
	for _, t := range tenants {
		r.tenants[t.ID] = t
		if t.ID > r.nextID {
			r.nextID = t.ID
		}
	}
	return r
}

func (r *fakeTenantRepo) Create(_ context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	r.nextID++
	created := *tenant
	created.ID = r.nextID
	r.tenants[created.ID] = created
	return &created, nil
}

func (r *fakeTenantRepo) Update(_ context.Context, tenant *domain.Tenant) (*domain.Tenant, error) {
	r.tenants[tenant.ID] = *tenant
	updated := *tenant
	return &updated, nil
}

func (r *fakeTenantRepo) Delete(_ context.Context, id int64) error {
	delete(r.tenants, id)
	return nil
}

func (r *fakeTenantRepo) GetByID(_ context.Context, id int64) (*domain.Tenant, error) {
	tenant, ok := r.tenants[id]
	if !ok {
		return nil, nil
	}
	return &tenant, nil
}

func (r *fakeTenantRepo) List(_ context.Context) ([]domain.Tenant, error) {
	result := make([]domain.Tenant, 0, len(r.tenants))
	for id := int64(1); id <= r.nextID; id++ {
		if tenant, ok := r.tenants[id]; ok {
			result = append(result, tenant)
		}
	}
	return result, nil
}

// fakeCacheRepo потокобезопасен: SetDetail вызывается из фоновой горутины.
type fakeCacheRepo struct {
	mu      sync.Mutex
	details map[[2]int64]*ProductDetail
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{details: make(map[[2]int64]*ProductDetail)}
}

func (r *fakeCacheRepo) GetDetail(_ context.Context, tenantID, productID int64) (*ProductDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.details[[2]int64{tenantID, productID}], nil
}

func (r *fakeCacheRepo) SetDetail(_ context.Context, tenantID int64, detail *ProductDetail) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.details[[2]int64{tenantID, detail.ID}] = detail
	return nil
}

func (r *fakeCacheRepo) DeleteProduct(_ context.Context, productID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.details {
		if key[1] == productID {
			delete(r.details, key)
		}
	}
	return nil
}

func (r *fakeCacheRepo) DeleteTenantProduct(_ context.Context, tenantID, productID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.details, [2]int64{tenantID, productID})
	return nil
}

// HELPERS

func ptr[T any](v T) *T {
	return &v
}

func newCatalogFixture() (*CatalogUseCase, *fakeProductRepo, *fakeTenantProductRepo, *fakeVariantRepo, *fakeSpecRepo, *fakeImageRepo, *fakeCategoryRepo, *fakeCacheRepo) {
	productRepo := newFakeProductRepo()
	tenantProductRepo := &fakeTenantProductRepo{}
	variantRepo := &fakeVariantRepo{}
	specRepo := &fakeSpecRepo{}
	imageRepo := &fakeImageRepo{}
	categoryRepo := newFakeCategoryRepo()
	cacheRepo := newFakeCacheRepo()

	uc := NewCatalogUC(productRepo, tenantProductRepo, variantRepo, specRepo, imageRepo, categoryRepo, cacheRepo, nopLogger{})
	return uc, productRepo, tenantProductRepo, variantRepo, specRepo, imageRepo, categoryRepo, cacheRepo
}
