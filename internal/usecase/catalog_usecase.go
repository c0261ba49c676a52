package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/laptopmundo/catalog-backend/internal/domain"
	"github.com/laptopmundo/catalog-backend/pkg/e"
	"github.com/laptopmundo/catalog-backend/pkg/logger"
)

const (
	defaultPage      = 1
	defaultPageSize  = 20
	featuredPageSize = 10
)

// CatalogUseCase собирает витрину тенанта из независимых коллекций
// без серверных join'ов: выборки батчами, слияние по id в памяти.
type CatalogUseCase struct {
	productRepo       ProductRepository
	tenantProductRepo TenantProductRepository
	variantRepo       VariantRepository
	specRepo          SpecificationRepository
	imageRepo         ProductImageRepository
	categoryRepo      CategoryRepository
	cacheRepo         CacheRepository
	logger            logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	tenantProductRepo TenantProductRepository,
	variantRepo VariantRepository,
	specRepo SpecificationRepository,
	imageRepo ProductImageRepository,
	categoryRepo CategoryRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:       productRepo,
		tenantProductRepo: tenantProductRepo,
		variantRepo:       variantRepo,
		specRepo:          specRepo,
		imageRepo:         imageRepo,
		categoryRepo:      categoryRepo,
		cacheRepo:         cacheRepo,
		logger:            logger,
	}
}

// Products возвращает страницу каталога тенанта.
//
// Диапазон цен и видимость уходят в выборку по tenant_products; фильтры по
// категории и поисковой строке применяются в памяти после соединения с
// products, так как у привязки нет ни имени, ни категории. totalCount
// считается до нарезки страницы, обогащение выполняется только для страницы.
func (c *CatalogUseCase) Products(ctx context.Context, tenantID int64, filter *CatalogFilter) (*ProductPage, error) {
	const op = "CatalogUseCase.Products"

	if filter == nil {
		filter = &CatalogFilter{}
	}
	page, pageSize := normalizePage(filter.Page, filter.PageSize)

	links, err := c.tenantProductRepo.List(ctx, tenantID, &TenantProductQuery{
		IsVisible: visibleByDefault(filter.IsVisible),
		MinPrice:  filter.MinPrice,
		MaxPrice:  filter.MaxPrice,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filtered := links
	if filter.Search != "" || filter.CategoryID != nil {
		filtered, err = c.filterByProduct(ctx, links, filter)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	totalCount := len(filtered)
	pageLinks := paginateLinks(filtered, page, pageSize)

	items, err := c.assemble(ctx, pageLinks)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewProductPage(items, page, pageSize, totalCount), nil
}

// Search — поиск по подстроке в имени или описании товара без учёта регистра.
// Пустой запрос отклоняется до обращения к хранилищу.
func (c *CatalogUseCase) Search(ctx context.Context, tenantID int64, query string, page, pageSize int) (*ProductPage, error) {
	const op = "CatalogUseCase.Search"

	if strings.TrimSpace(query) == "" {
		return nil, e.Wrap(op, e.ErrEmptySearchQuery)
	}

	result, err := c.Products(ctx, tenantID, &CatalogFilter{
		Search:   query,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return result, nil
}

// Featured возвращает первые десять видимых товаров тенанта.
// TODO: добавить признак is_featured в tenant_products
func (c *CatalogUseCase) Featured(ctx context.Context, tenantID int64) ([]ProductView, error) {
	const op = "CatalogUseCase.Featured"

	result, err := c.Products(ctx, tenantID, &CatalogFilter{
		Page:     defaultPage,
		PageSize: featuredPageSize,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return result.Items, nil
}

// Detail возвращает полную карточку товара для тенанта: проекция с
// коммерческими полями тенанта, активные варианты, характеристики и все
// изображения. Если товар тенанту недоступен, возвращает (nil, nil).
func (c *CatalogUseCase) Detail(ctx context.Context, tenantID, productID int64) (*ProductDetail, error) {
	const op = "CatalogUseCase.Detail"

	if cached, err := c.cacheRepo.GetDetail(ctx, tenantID, productID); err == nil && cached != nil {
		return cached, nil
	}

	view, err := c.resolveOverride(ctx, tenantID, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if view == nil {
		return nil, nil
	}

	variants, err := c.variantRepo.ListActive(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	specs, err := c.specRepo.List(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	images, err := c.imageRepo.List(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if view.CategoryID != nil {
		category, err := c.categoryRepo.GetByID(ctx, *view.CategoryID)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		if category != nil {
			view.CategoryName = &category.Name
		}
	}

	view.PrimaryImageURL = firstPrimaryURL(images)

	detail := &ProductDetail{
		ProductView:    *view,
		Variants:       variants,
		Specifications: specs,
		Images:         images,
	}

	// Фоновое кэширование собранной карточки
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetDetail(bgCtx, tenantID, detail); err != nil {
			c.logger.Warnf("Failed to cache product detail in background: %v", e.Wrap(op, err))
		}
	}()

	return detail, nil
}

// ProductsByCategory возвращает страницу видимых товаров тенанта в категории.
// Сначала выбираются товары категории; пустая категория завершает вызов без
// обращения к tenant_products. Имя категории запрашивается один раз.
func (c *CatalogUseCase) ProductsByCategory(ctx context.Context, tenantID, categoryID int64, page, pageSize int) (*ProductPage, error) {
	const op = "CatalogUseCase.ProductsByCategory"

	page, pageSize = normalizePage(page, pageSize)

	products, err := c.productRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(products) == 0 {
		return NewProductPage([]ProductView{}, page, pageSize, 0), nil
	}

	productIDs := make([]int64, 0, len(products))
	productsByID := make(map[int64]domain.Product, len(products))
	for _, product := range products {
		productIDs = append(productIDs, product.ID)
		productsByID[product.ID] = product
	}

	links, err := c.tenantProductRepo.ListVisibleByProducts(ctx, tenantID, productIDs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	totalCount := len(links)
	pageLinks := paginateLinks(links, page, pageSize)

	var categoryName *string
	category, err := c.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if category != nil {
		categoryName = &category.Name
	}

	pageIDs := make([]int64, 0, len(pageLinks))
	for _, link := range pageLinks {
		pageIDs = append(pageIDs, link.ProductID)
	}

	primaryImages := make(map[int64]string)
	if len(pageIDs) > 0 {
		images, err := c.imageRepo.ListPrimaryByProducts(ctx, pageIDs)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		for _, image := range images {
			if _, ok := primaryImages[image.ProductID]; ok {
				continue
			}
			primaryImages[image.ProductID] = image.ImageURL
		}
	}

	items := make([]ProductView, 0, len(pageLinks))
	for _, link := range pageLinks {
		product, ok := productsByID[link.ProductID]
		if !ok {
			c.logger.Warnf("%s: tenant product %d references missing product %d, skipping", op, link.ID, link.ProductID)
			continue
		}

		view := NewProductView(&product, &link)
		view.CategoryName = categoryName
		if url, ok := primaryImages[link.ProductID]; ok {
			view.PrimaryImageURL = &url
		}
		items = append(items, *view)
	}

	return NewProductPage(items, page, pageSize, totalCount), nil
}

// Categories возвращает все категории каталога.
func (c *CatalogUseCase) Categories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.Categories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

// Category возвращает категорию по id, (nil, nil) если её нет.
func (c *CatalogUseCase) Category(ctx context.Context, id int64) (*domain.Category, error) {
	const op = "CatalogUseCase.Category"

	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// filterByProduct применяет фильтры, требующие полей Product (категория,
// поиск), к набору привязок. Привязки-сироты исключаются с предупреждением.
func (c *CatalogUseCase) filterByProduct(ctx context.Context, links []domain.TenantProduct, filter *CatalogFilter) ([]domain.TenantProduct, error) {
	const op = "CatalogUseCase.filterByProduct"

	if len(links) == 0 {
		return links, nil
	}

	ids := make([]int64, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.ProductID)
	}

	products, err := c.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	needle := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]domain.TenantProduct, 0, len(links))
	for _, link := range links {
		product, ok := byID[link.ProductID]
		if !ok {
			c.logger.Warnf("%s: tenant product %d references missing product %d, skipping", op, link.ID, link.ProductID)
			continue
		}

		if filter.CategoryID != nil {
			if product.CategoryID == nil || *product.CategoryID != *filter.CategoryID {
				continue
			}
		}

		if needle != "" && !matchesSearch(&product, needle) {
			continue
		}

		filtered = append(filtered, link)
	}

	return filtered, nil
}

// assemble обогащает страницу привязок и собирает итоговые проекции.
func (c *CatalogUseCase) assemble(ctx context.Context, links []domain.TenantProduct) ([]ProductView, error) {
	const op = "CatalogUseCase.assemble"

	ids := make([]int64, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.ProductID)
	}

	en, err := c.enrich(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]ProductView, 0, len(links))
	for _, link := range links {
		product, ok := en.products[link.ProductID]
		if !ok {
			c.logger.Warnf("%s: tenant product %d references missing product %d, skipping", op, link.ID, link.ProductID)
			continue
		}

		view := NewProductView(&product, &link)
		view.CategoryName = en.CategoryName(link.ProductID)
		view.PrimaryImageURL = en.PrimaryImageURL(link.ProductID)
		items = append(items, *view)
	}

	return items, nil
}

// matchesSearch проверяет вхождение подстроки в имя или описание товара
// без учёта регистра.
func matchesSearch(product *domain.Product, needle string) bool {
	if strings.Contains(strings.ToLower(product.Name), needle) {
		return true
	}
	if product.Description != nil && strings.Contains(strings.ToLower(*product.Description), needle) {
		return true
	}

	return false
}

// normalizePage приводит номер и размер страницы к допустимым значениям:
// неположительные значения заменяются значениями по умолчанию.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	return page, pageSize
}

// paginateLinks возвращает срез страницы; выход за пределы набора даёт
// пустую страницу, а не ошибку.
func paginateLinks(links []domain.TenantProduct, page, pageSize int) []domain.TenantProduct {
	offset := (page - 1) * pageSize
	if offset >= len(links) {
		return nil
	}

	end := offset + pageSize
	if end > len(links) {
		end = len(links)
	}

	return links[offset:end]
}

// visibleByDefault интерпретирует отсутствующий флаг видимости как "только видимые".
func visibleByDefault(isVisible *bool) *bool {
	if isVisible != nil {
		return isVisible
	}

	visible := true
	return &visible
}

// firstPrimaryURL выбирает URL первого первичного изображения из списка.
func firstPrimaryURL(images []domain.ProductImage) *string {
	for _, image := range images {
		if image.IsPrimary {
			url := image.ImageURL
			return &url
		}
	}

	return nil
}
