package http

import (
	"net/http"

	"github.com/laptopmundo/catalog-backend/internal/usecase"
	"github.com/laptopmundo/catalog-backend/pkg/e"
	"github.com/laptopmundo/catalog-backend/pkg/logger"
)

// CatalogHandler обслуживает публичную витрину: чтение каталога в проекции тенанта.
type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Каталог тенанта
//	@Description	Возвращает страницу видимых товаров тенанта с фильтрами по категории и цене
//	@Tags			catalog
//	@Produce		json
//	@Param			tenantId	query		int		true	"ID тенанта"
//	@Param			page		query		int		false	"Номер страницы (с 1)"
//	@Param			pageSize	query		int		false	"Размер страницы"
//	@Param			categoryId	query		int		false	"Фильтр по категории"
//	@Param			minPrice	query		number	false	"Минимальная цена"
//	@Param			maxPrice	query		number	false	"Максимальная цена"
//	@Success		200			{object}	ProductPageResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	tenantID, err := parseTenantID(r)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	page, pageSize, err := parsePageParams(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	categoryID, err := parseOptionalID(r, "categoryId")
	if err != nil {
		WriteError(w, err)
		return
	}

	minPrice, err := parseOptionalPrice(r, "minPrice")
	if err != nil {
		WriteError(w, err)
		return
	}

	maxPrice, err := parseOptionalPrice(r, "maxPrice")
	if err != nil {
		WriteError(w, err)
		return
	}

	filter := &usecase.CatalogFilter{
		CategoryID: categoryID,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Page:       page,
		PageSize:   pageSize,
	}

	result, err := h.catalogUsecase.Products(r.Context(), tenantID, filter)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductPageResponse(result))
}

// searchProducts
//
//	@Summary		Поиск по каталогу тенанта
//	@Description	Ищет видимые товары тенанта по имени и описанию без учёта регистра
//	@Tags			catalog
//	@Produce		json
//	@Param			tenantId	query		int		true	"ID тенанта"
//	@Param			q			query		string	true	"Поисковый запрос"
//	@Param			page		query		int		false	"Номер страницы (с 1)"
//	@Param			pageSize	query		int		false	"Размер страницы"
//	@Success		200			{object}	ProductPageResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products/search [get]
func (h *CatalogHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	tenantID, err := parseTenantID(r)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	page, pageSize, err := parsePageParams(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.catalogUsecase.Search(r.Context(), tenantID, r.URL.Query().Get("q"), page, pageSize)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductPageResponse(result))
}

// featuredProducts
//
//	@Summary		Рекомендуемые товары
//	@Description	Возвращает первые видимые товары тенанта для главной страницы
//	@Tags			catalog
//	@Produce		json
//	@Param			tenantId	query		int	true	"ID тенанта"
//	@Success		200			{array}		ProductViewResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products/featured [get]
func (h *CatalogHandler) featuredProducts(w http.ResponseWriter, r *http.Request) {
	tenantID, err := parseTenantID(r)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	views, err := h.catalogUsecase.Featured(r.Context(), tenantID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductViewsResponse(views))
}

// productDetail
//
//	@Summary		Карточка товара
//	@Description	Возвращает полную карточку товара в проекции тенанта
//	@Tags			catalog
//	@Produce		json
//	@Param			tenantId	query		int	true	"ID тенанта"
//	@Param			productID	path		int	true	"ID товара"
//	@Success		200			{object}	ProductDetailResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/products/{productID} [get]
func (h *CatalogHandler) productDetail(w http.ResponseWriter, r *http.Request) {
	tenantID, err := parseTenantID(r)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	detail, err := h.catalogUsecase.Detail(r.Context(), tenantID, productID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}
	if detail == nil {
		WriteError(w, e.ErrProductNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductDetailResponse(detail))
}

// listCategories
//
//	@Summary		Список категорий
//	@Tags			categories
//	@Produce		json
//	@Success		200	{array}	CategoryResponse
//	@Router			/categories [get]
func (h *CatalogHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUsecase.Categories(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCategoriesResponse(categories))
}

// categoryByID
//
//	@Summary		Категория по ID
//	@Tags			categories
//	@Produce		json
//	@Param			categoryID	path		int	true	"ID категории"
//	@Success		200			{object}	CategoryResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/categories/{categoryID} [get]
func (h *CatalogHandler) categoryByID(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseIDParam(r, "categoryID")
	if err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.catalogUsecase.Category(r.Context(), categoryID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}
	if category == nil {
		WriteError(w, e.ErrCategoryNotFound)
		return
	}

	WriteSuccess(w, http.StatusOK, newCategoryResponse(category))
}

// categoryProducts
//
//	@Summary		Товары категории
//	@Description	Возвращает страницу видимых товаров тенанта из указанной категории
//	@Tags			categories
//	@Produce		json
//	@Param			tenantId	query		int	true	"ID тенанта"
//	@Param			categoryID	path		int	true	"ID категории"
//	@Param			page		query		int	false	"Номер страницы (с 1)"
//	@Param			pageSize	query		int	false	"Размер страницы"
//	@Success		200			{object}	ProductPageResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/categories/{categoryID}/products [get]
func (h *CatalogHandler) categoryProducts(w http.ResponseWriter, r *http.Request) {
	tenantID, err := parseTenantID(r)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	categoryID, err := parseIDParam(r, "categoryID")
	if err != nil {
		WriteError(w, err)
		return
	}

	page, pageSize, err := parsePageParams(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.catalogUsecase.ProductsByCategory(r.Context(), tenantID, categoryID, page, pageSize)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductPageResponse(result))
}
