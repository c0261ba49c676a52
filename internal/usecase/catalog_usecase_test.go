package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/laptopmundo/catalog-backend/internal/domain"
	"github.com/laptopmundo/catalog-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

const testTenantID = int64(7)

func seedCatalog(productRepo *fakeProductRepo, tenantProductRepo *fakeTenantProductRepo, n int) {
	for i := 1; i <= n; i++ {
		productRepo.products[int64(i)] = domain.Product{
			ID:   int64(i),
			Name: fmt.Sprintf("Laptop %02d", i),
		}
		if int64(i) > productRepo.nextID {
			productRepo.nextID = int64(i)
		}
		tenantProductRepo.links = append(tenantProductRepo.links, domain.TenantProduct{
			ID:             int64(i),
			TenantID:       testTenantID,
			ProductID:      int64(i),
			Price:          int64(i) * 10000,
			InventoryCount: 5,
			IsVisible:      true,
		})
	}
}

func TestProducts_Pagination(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 25)

	page, err := uc.Products(context.Background(), testTenantID, &CatalogFilter{Page: 2, PageSize: 10})
	require.NoError(t, err)

	require.Len(t, page.Items, 10)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 10, page.PageSize)
	require.Equal(t, 25, page.TotalCount)
	require.Equal(t, 3, page.TotalPages)
	// Страница 2 начинается с 11-го товара
	require.Equal(t, int64(11), page.Items[0].ID)
}

func TestProducts_LastPageShorter(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 25)

	page, err := uc.Products(context.Background(), testTenantID, &CatalogFilter{Page: 3, PageSize: 10})
	require.NoError(t, err)

	require.Len(t, page.Items, 5)
	require.Equal(t, 25, page.TotalCount)
	require.Equal(t, 3, page.TotalPages)
}

func TestProducts_PageBeyondRange(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 5)

	page, err := uc.Products(context.Background(), testTenantID, &CatalogFilter{Page: 4, PageSize: 10})
	require.NoError(t, err)

	require.Empty(t, page.Items)
	require.Equal(t, 5, page.TotalCount)
	require.Equal(t, 1, page.TotalPages)
}

func TestProducts_NormalizesPageAndSize(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 3)

	page, err := uc.Products(context.Background(), testTenantID, &CatalogFilter{Page: 0, PageSize: -5})
	require.NoError(t, err)

	require.Equal(t, 1, page.Page)
	require.Equal(t, 20, page.PageSize)
	require.Len(t, page.Items, 3)
}

func TestProducts_InvisibleExcluded(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 4)
	tenantProductRepo.links[1].IsVisible = false

	page, err := uc.Products(context.Background(), testTenantID, nil)
	require.NoError(t, err)

	require.Len(t, page.Items, 3)
	require.Equal(t, 3, page.TotalCount)
	for _, item := range page.Items {
		require.NotEqual(t, int64(2), item.ID)
	}
}

func TestProducts_PriceRange(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 5) // цены 10000..50000

	page, err := uc.Products(context.Background(), testTenantID, &CatalogFilter{
		MinPrice: ptr(int64(20000)),
		MaxPrice: ptr(int64(40000)),
	})
	require.NoError(t, err)

	require.Equal(t, 3, page.TotalCount)
	for _, item := range page.Items {
		require.GreaterOrEqual(t, item.Price, int64(20000))
		require.LessOrEqual(t, item.Price, int64(40000))
	}
}

func TestProducts_PriceFromLinkNotVariant(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 1)
	tenantProductRepo.links[0].Price = 99900
	tenantProductRepo.links[0].InventoryCount = 2

	page, err := uc.Products(context.Background(), testTenantID, nil)
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	require.Equal(t, int64(99900), page.Items[0].Price)
	require.Equal(t, int32(2), page.Items[0].InventoryCount)
}

func TestProducts_CategoryFilterCountsBeforeSlice(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 30)
	// Категория 9 у каждого третьего товара
	for i := int64(3); i <= 30; i += 3 {
		product := productRepo.products[i]
		product.CategoryID = ptr(int64(9))
		productRepo.products[i] = product
	}

	page, err := uc.Products(context.Background(), testTenantID, &CatalogFilter{
		CategoryID: ptr(int64(9)),
		Page:       1,
		PageSize:   4,
	})
	require.NoError(t, err)

	require.Len(t, page.Items, 4)
	require.Equal(t, 10, page.TotalCount)
	require.Equal(t, 3, page.TotalPages)
	for _, item := range page.Items {
		require.Equal(t, int64(9), *item.CategoryID)
	}
}

func TestProducts_OrphanLinkSkipped(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 3)
	tenantProductRepo.links = append(tenantProductRepo.links, domain.TenantProduct{
		ID: 99, TenantID: testTenantID, ProductID: 777, Price: 100, IsVisible: true,
	})

	page, err := uc.Products(context.Background(), testTenantID, nil)
	require.NoError(t, err)

	// Сирота не попадает в выдачу и не роняет запрос
	require.Len(t, page.Items, 3)
	for _, item := range page.Items {
		require.NotEqual(t, int64(777), item.ID)
	}
}

func TestProducts_EnrichmentDoesNotChangeCount(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, imageRepo, categoryRepo, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 6)

	// Категория и изображение есть только у первого товара
	categoryRepo.categories[1] = domain.Category{ID: 1, Name: "Gaming"}
	categoryRepo.nextID = 1
	product := productRepo.products[1]
	product.CategoryID = ptr(int64(1))
	productRepo.products[1] = product
	imageRepo.images = append(imageRepo.images, domain.ProductImage{
		ID: 1, ProductID: 1, ImageURL: "https://cdn.example.com/1.jpg", IsPrimary: true,
	})

	page, err := uc.Products(context.Background(), testTenantID, nil)
	require.NoError(t, err)

	require.Len(t, page.Items, 6)
	require.Equal(t, 6, page.TotalCount)

	first := page.Items[0]
	require.Equal(t, "Gaming", *first.CategoryName)
	require.Equal(t, "https://cdn.example.com/1.jpg", *first.PrimaryImageURL)
	for _, item := range page.Items[1:] {
		require.Nil(t, item.CategoryName)
		require.Nil(t, item.PrimaryImageURL)
	}
}

func TestProducts_DuplicatePrimaryImageFirstWins(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, imageRepo, _, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 1)
	imageRepo.images = append(imageRepo.images,
		domain.ProductImage{ID: 1, ProductID: 1, ImageURL: "https://cdn.example.com/a.jpg", IsPrimary: true},
		domain.ProductImage{ID: 2, ProductID: 1, ImageURL: "https://cdn.example.com/b.jpg", IsPrimary: true},
	)

	page, err := uc.Products(context.Background(), testTenantID, nil)
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	require.Equal(t, "https://cdn.example.com/a.jpg", *page.Items[0].PrimaryImageURL)
}

func TestSearch_BlankQueryRejected(t *testing.T) {
	uc, _, _, _, _, _, _, _ := newCatalogFixture()

	for _, query := range []string{"", "   ", "\t"} {
		_, err := uc.Search(context.Background(), testTenantID, query, 1, 20)
		require.ErrorIs(t, err, e.ErrEmptySearchQuery)
	}
}

func TestSearch_CaseInsensitiveNameAndDescription(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 3)

	p1 := productRepo.products[1]
	p1.Name = "ThinkPad X1 Carbon"
	productRepo.products[1] = p1

	p2 := productRepo.products[2]
	p2.Description = ptr("Ultrabook with CARBON fiber body")
	productRepo.products[2] = p2

	page, err := uc.Search(context.Background(), testTenantID, "carbon", 1, 20)
	require.NoError(t, err)

	require.Equal(t, 2, page.TotalCount)
	ids := []int64{page.Items[0].ID, page.Items[1].ID}
	require.ElementsMatch(t, []int64{1, 2}, ids)
}

func TestSearch_ExcludesInvisible(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 2)
	tenantProductRepo.links[1].IsVisible = false

	page, err := uc.Search(context.Background(), testTenantID, "laptop", 1, 20)
	require.NoError(t, err)

	require.Equal(t, 1, page.TotalCount)
	require.Equal(t, int64(1), page.Items[0].ID)
}

func TestFeatured_FirstTenVisible(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 15)

	items, err := uc.Featured(context.Background(), testTenantID)
	require.NoError(t, err)

	require.Len(t, items, 10)
}

func TestDetail_FullCard(t *testing.T) {
	uc, productRepo, tenantProductRepo, variantRepo, specRepo, imageRepo, categoryRepo, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 1)

	categoryRepo.categories[3] = domain.Category{ID: 3, Name: "Workstation"}
	categoryRepo.nextID = 3
	product := productRepo.products[1]
	product.CategoryID = ptr(int64(3))
	productRepo.products[1] = product

	variantRepo.variants = append(variantRepo.variants,
		domain.ProductVariant{ID: 1, ProductID: 1, Sku: "SKU-A", Price: 100, IsActive: true},
		domain.ProductVariant{ID: 2, ProductID: 1, Sku: "SKU-B", Price: 200, IsActive: false},
	)
	specRepo.specs = append(specRepo.specs,
		domain.ProductSpecification{ID: 1, ProductID: 1, Name: "RAM", Value: "32GB"},
	)
	imageRepo.images = append(imageRepo.images,
		domain.ProductImage{ID: 1, ProductID: 1, ImageURL: "https://cdn.example.com/x.jpg", IsPrimary: false},
		domain.ProductImage{ID: 2, ProductID: 1, ImageURL: "https://cdn.example.com/y.jpg", IsPrimary: true},
	)

	detail, err := uc.Detail(context.Background(), testTenantID, 1)
	require.NoError(t, err)
	require.NotNil(t, detail)

	// Коммерческие поля из привязки тенанта
	require.Equal(t, int64(10000), detail.Price)
	require.Equal(t, "Workstation", *detail.CategoryName)

	// Только активные варианты
	require.Len(t, detail.Variants, 1)
	require.Equal(t, "SKU-A", detail.Variants[0].Sku)

	require.Len(t, detail.Specifications, 1)
	require.Len(t, detail.Images, 2)
	require.Equal(t, "https://cdn.example.com/y.jpg", *detail.PrimaryImageURL)
}

func TestDetail_AbsentLink(t *testing.T) {
	uc, productRepo, _, _, _, _, _, _ := newCatalogFixture()
	productRepo.products[1] = domain.Product{ID: 1, Name: "Laptop"}
	productRepo.nextID = 1

	detail, err := uc.Detail(context.Background(), testTenantID, 1)
	require.NoError(t, err)
	require.Nil(t, detail)
}

func TestDetail_InvisibleLink(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 1)
	tenantProductRepo.links[0].IsVisible = false

	detail, err := uc.Detail(context.Background(), testTenantID, 1)
	require.NoError(t, err)
	require.Nil(t, detail)
}

func TestDetail_OrphanLink(t *testing.T) {
	uc, _, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()
	tenantProductRepo.links = append(tenantProductRepo.links, domain.TenantProduct{
		ID: 1, TenantID: testTenantID, ProductID: 42, Price: 100, IsVisible: true,
	})

	detail, err := uc.Detail(context.Background(), testTenantID, 42)
	require.NoError(t, err)
	require.Nil(t, detail)
}

func TestDetail_CacheHit(t *testing.T) {
	uc, _, _, _, _, _, _, cacheRepo := newCatalogFixture()

	cached := &ProductDetail{ProductView: ProductView{ID: 5, Name: "Cached", Price: 777}}
	require.NoError(t, cacheRepo.SetDetail(context.Background(), testTenantID, cached))

	detail, err := uc.Detail(context.Background(), testTenantID, 5)
	require.NoError(t, err)
	require.Equal(t, "Cached", detail.Name)
	require.Equal(t, int64(777), detail.Price)
}

func TestDetail_CachesInBackground(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, _, cacheRepo := newCatalogFixture()
	seedCatalog(productRepo, tenantProductRepo, 1)

	detail, err := uc.Detail(context.Background(), testTenantID, 1)
	require.NoError(t, err)
	require.NotNil(t, detail)

	require.Eventually(t, func() bool {
		cached, err := cacheRepo.GetDetail(context.Background(), testTenantID, 1)
		return err == nil && cached != nil
	}, time.Second, 10*time.Millisecond)
}

func TestProductsByCategory_EmptyCategoryShortCircuits(t *testing.T) {
	uc, _, tenantProductRepo, _, _, _, _, _ := newCatalogFixture()

	page, err := uc.ProductsByCategory(context.Background(), testTenantID, 5, 1, 20)
	require.NoError(t, err)

	require.Empty(t, page.Items)
	require.Equal(t, 0, page.TotalCount)
	require.Equal(t, 0, page.TotalPages)
	// Пустая категория не приводит к выборке привязок
	require.Zero(t, tenantProductRepo.listCalls)
}

func TestProductsByCategory_VisibleAssignedOnly(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, categoryRepo, _ := newCatalogFixture()
	categoryRepo.categories[2] = domain.Category{ID: 2, Name: "Ultrabooks"}
	categoryRepo.nextID = 2

	for i := int64(1); i <= 4; i++ {
		productRepo.products[i] = domain.Product{ID: i, Name: fmt.Sprintf("U%d", i), CategoryID: ptr(int64(2))}
	}
	productRepo.nextID = 4
	// 1 — видимый, 2 — скрытый, 3 — не привязан, 4 — видимый
	tenantProductRepo.links = []domain.TenantProduct{
		{ID: 1, TenantID: testTenantID, ProductID: 1, Price: 100, IsVisible: true},
		{ID: 2, TenantID: testTenantID, ProductID: 2, Price: 200, IsVisible: false},
		{ID: 4, TenantID: testTenantID, ProductID: 4, Price: 400, IsVisible: true},
	}

	page, err := uc.ProductsByCategory(context.Background(), testTenantID, 2, 1, 20)
	require.NoError(t, err)

	require.Equal(t, 2, page.TotalCount)
	require.Len(t, page.Items, 2)
	for _, item := range page.Items {
		require.Equal(t, "Ultrabooks", *item.CategoryName)
	}
}

func TestProductsByCategory_Paginated(t *testing.T) {
	uc, productRepo, tenantProductRepo, _, _, _, categoryRepo, _ := newCatalogFixture()
	categoryRepo.categories[1] = domain.Category{ID: 1, Name: "All"}
	categoryRepo.nextID = 1

	for i := int64(1); i <= 7; i++ {
		productRepo.products[i] = domain.Product{ID: i, Name: fmt.Sprintf("P%d", i), CategoryID: ptr(int64(1))}
		tenantProductRepo.links = append(tenantProductRepo.links, domain.TenantProduct{
			ID: i, TenantID: testTenantID, ProductID: i, Price: i * 100, IsVisible: true,
		})
	}
	productRepo.nextID = 7

	page, err := uc.ProductsByCategory(context.Background(), testTenantID, 1, 2, 3)
	require.NoError(t, err)

	require.Len(t, page.Items, 3)
	require.Equal(t, 7, page.TotalCount)
	require.Equal(t, 3, page.TotalPages)
}

func TestCategories_List(t *testing.T) {
	uc, _, _, _, _, _, categoryRepo, _ := newCatalogFixture()
	categoryRepo.categories[1] = domain.Category{ID: 1, Name: "A"}
	categoryRepo.categories[2] = domain.Category{ID: 2, Name: "B"}
	categoryRepo.nextID = 2

	categories, err := uc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
}

func TestCategory_NotFound(t *testing.T) {
	uc, _, _, _, _, _, _, _ := newCatalogFixture()

	category, err := uc.Category(context.Background(), 123)
	require.NoError(t, err)
	require.Nil(t, category)
}

func TestNewProductPage_TotalPages(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int
		pageSize   int
		want       int
	}{
		{"empty", 0, 20, 0},
		{"exact", 40, 20, 2},
		{"remainder", 41, 20, 3},
		{"single", 1, 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewProductPage(nil, 1, tt.pageSize, tt.totalCount)
			require.Equal(t, tt.want, page.TotalPages)
		})
	}
}
