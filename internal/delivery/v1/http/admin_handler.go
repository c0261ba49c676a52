package http

import (
	"net/http"

	"github.com/laptopmundo/catalog-backend/internal/usecase"
	"github.com/laptopmundo/catalog-backend/pkg/e"
	"github.com/laptopmundo/catalog-backend/pkg/logger"
)

// AdminHandler обслуживает административное управление каталогом:
// товары, варианты, характеристики, изображения, категории и привязки тенантов.
type AdminHandler struct {
	adminUsecase usecase.AdminUC
	logger       logger.Logger
}

func NewAdminHandler(adminUsecase usecase.AdminUC, logger logger.Logger) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase, logger: logger}
}

type ProductRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	CategoryID  *int64  `json:"categoryId"`
}

type VariantRequest struct {
	ProductID      int64   `json:"productId"`
	Sku            string  `json:"sku"`
	Size           *string `json:"size"`
	Color          *string `json:"color"`
	Model          *string `json:"model"`
	Price          string  `json:"price"`
	InventoryCount int32   `json:"inventoryCount"`
	IsActive       *bool   `json:"isActive"`
}

type SpecificationRequest struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Value     string `json:"value"`
}

type ImageRequest struct {
	ProductID int64  `json:"productId"`
	ImageURL  string `json:"imageUrl"`
	IsPrimary bool   `json:"isPrimary"`
}

type CategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type TenantProductRequest struct {
	ProductID      int64  `json:"productId"`
	Price          string `json:"price"`
	InventoryCount int32  `json:"inventoryCount"`
	IsVisible      *bool  `json:"isVisible"`
}

// createProduct
//
//	@Summary		Создание товара
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ProductRequest	true	"Товар"
//	@Success		201		{object}	AdminProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/admin/products [post]
func (h *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	result, err := h.adminUsecase.CreateProduct(r.Context(), &usecase.CreateProductReq{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newAdminProductResponse(result))
}

// updateProduct
//
//	@Summary		Обновление товара
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		int				true	"ID товара"
//	@Param			request		body		ProductRequest	true	"Товар"
//	@Success		200			{object}	AdminProductResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/admin/products/{productID} [put]
func (h *AdminHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.adminUsecase.UpdateProduct(r.Context(), productID, &usecase.UpdateProductReq{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newAdminProductResponse(result))
}

// deleteProduct
//
//	@Summary		Удаление товара
//	@Description	Удаляет товар вместе с вариантами, характеристиками, изображениями и привязками тенантов
//	@Tags			admin
//	@Param			productID	path	int	true	"ID товара"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/admin/products/{productID} [delete]
func (h *AdminHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.adminUsecase.DeleteProduct(r.Context(), productID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// uploadProductImages
//
//	@Summary		Загрузка изображений товара
//	@Description	Принимает multipart/form-data, складывает файлы в объектное хранилище и создает записи изображений
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			productID	path		int		true	"ID товара"
//	@Param			images		formData	file	true	"Изображения"
//	@Success		201			{object}	UploadedImagesResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/admin/products/{productID}/images/upload [post]
func (h *AdminHandler) uploadProductImages(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	created, err := h.adminUsecase.UploadProductImages(r.Context(), productID, images)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newUploadedImagesResponse(created))
}

// createVariant
//
//	@Summary		Создание варианта товара
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		VariantRequest	true	"Вариант"
//	@Success		201		{object}	VariantResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/admin/variants [post]
func (h *AdminHandler) createVariant(w http.ResponseWriter, r *http.Request) {
	var req VariantRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	price, err := parsePriceToCents(req.Price)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	variant, err := h.adminUsecase.CreateVariant(r.Context(), &usecase.CreateVariantReq{
		ProductID:      req.ProductID,
		Sku:            req.Sku,
		Size:           req.Size,
		Color:          req.Color,
		Model:          req.Model,
		Price:          price,
		InventoryCount: req.InventoryCount,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newVariantResponse(variant))
}

// updateVariant
//
//	@Summary		Обновление варианта товара
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			variantID	path		int				true	"ID варианта"
//	@Param			request		body		VariantRequest	true	"Вариант"
//	@Success		200			{object}	VariantResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/admin/variants/{variantID} [put]
func (h *AdminHandler) updateVariant(w http.ResponseWriter, r *http.Request) {
	variantID, err := parseIDParam(r, "variantID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req VariantRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	price, err := parsePriceToCents(req.Price)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	variant, err := h.adminUsecase.UpdateVariant(r.Context(), variantID, &usecase.UpdateVariantReq{
		Sku:            req.Sku,
		Size:           req.Size,
		Color:          req.Color,
		Model:          req.Model,
		Price:          price,
		InventoryCount: req.InventoryCount,
		IsActive:       isActive,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newVariantResponse(variant))
}

// deleteVariant
//
//	@Summary	Удаление варианта товара
//	@Tags		admin
//	@Param		variantID	path	int	true	"ID варианта"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/variants/{variantID} [delete]
func (h *AdminHandler) deleteVariant(w http.ResponseWriter, r *http.Request) {
	variantID, err := parseIDParam(r, "variantID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.adminUsecase.DeleteVariant(r.Context(), variantID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// createSpecification
//
//	@Summary		Создание характеристики товара
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SpecificationRequest	true	"Характеристика"
//	@Success		201		{object}	SpecificationResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/admin/specifications [post]
func (h *AdminHandler) createSpecification(w http.ResponseWriter, r *http.Request) {
	var req SpecificationRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	spec, err := h.adminUsecase.CreateSpecification(r.Context(), &usecase.CreateSpecificationReq{
		ProductID: req.ProductID,
		Name:      req.Name,
		Value:     req.Value,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newSpecificationResponse(spec))
}

// updateSpecification
//
//	@Summary		Обновление характеристики товара
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			specID	path		int						true	"ID характеристики"
//	@Param			request	body		SpecificationRequest	true	"Характеристика"
//	@Success		200		{object}	SpecificationResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/admin/specifications/{specID} [put]
func (h *AdminHandler) updateSpecification(w http.ResponseWriter, r *http.Request) {
	specID, err := parseIDParam(r, "specID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req SpecificationRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	spec, err := h.adminUsecase.UpdateSpecification(r.Context(), specID, &usecase.UpdateSpecificationReq{
		Name:  req.Name,
		Value: req.Value,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newSpecificationResponse(spec))
}

// deleteSpecification
//
//	@Summary	Удаление характеристики товара
//	@Tags		admin
//	@Param		specID	path	int	true	"ID характеристики"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/specifications/{specID} [delete]
func (h *AdminHandler) deleteSpecification(w http.ResponseWriter, r *http.Request) {
	specID, err := parseIDParam(r, "specID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.adminUsecase.DeleteSpecification(r.Context(), specID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// createImage
//
//	@Summary		Добавление изображения по URL
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ImageRequest	true	"Изображение"
//	@Success		201		{object}	ImageResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/admin/images [post]
func (h *AdminHandler) createImage(w http.ResponseWriter, r *http.Request) {
	var req ImageRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	image, err := h.adminUsecase.CreateImage(r.Context(), &usecase.CreateImageReq{
		ProductID: req.ProductID,
		ImageURL:  req.ImageURL,
		IsPrimary: req.IsPrimary,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newImageResponse(image))
}

// updateImage
//
//	@Summary		Обновление изображения
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			imageID	path		int				true	"ID изображения"
//	@Param			request	body		ImageRequest	true	"Изображение"
//	@Success		200		{object}	ImageResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/admin/images/{imageID} [put]
func (h *AdminHandler) updateImage(w http.ResponseWriter, r *http.Request) {
	imageID, err := parseIDParam(r, "imageID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req ImageRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	image, err := h.adminUsecase.UpdateImage(r.Context(), imageID, &usecase.UpdateImageReq{
		ImageURL:  req.ImageURL,
		IsPrimary: req.IsPrimary,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newImageResponse(image))
}

// deleteImage
//
//	@Summary	Удаление изображения
//	@Tags		admin
//	@Param		imageID	path	int	true	"ID изображения"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/images/{imageID} [delete]
func (h *AdminHandler) deleteImage(w http.ResponseWriter, r *http.Request) {
	imageID, err := parseIDParam(r, "imageID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.adminUsecase.DeleteImage(r.Context(), imageID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// createCategory
//
//	@Summary		Создание категории
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CategoryRequest	true	"Категория"
//	@Success		201		{object}	CategoryResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/admin/categories [post]
func (h *AdminHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.adminUsecase.CreateCategory(r.Context(), &usecase.CreateCategoryReq{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newCategoryResponse(category))
}

// updateCategory
//
//	@Summary		Обновление категории
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			categoryID	path		int				true	"ID категории"
//	@Param			request		body		CategoryRequest	true	"Категория"
//	@Success		200			{object}	CategoryResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/admin/categories/{categoryID} [put]
func (h *AdminHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseIDParam(r, "categoryID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.adminUsecase.UpdateCategory(r.Context(), categoryID, &usecase.UpdateCategoryReq{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCategoryResponse(category))
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Description	Товары категории сохраняются с обнуленной ссылкой на категорию
//	@Tags			admin
//	@Param			categoryID	path	int	true	"ID категории"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Router			/admin/categories/{categoryID} [delete]
func (h *AdminHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseIDParam(r, "categoryID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.adminUsecase.DeleteCategory(r.Context(), categoryID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// assignTenantProduct
//
//	@Summary		Привязка товара к тенанту
//	@Description	Назначает товар витрине тенанта с собственной ценой, остатками и видимостью
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			tenantID	path		int						true	"ID тенанта"
//	@Param			request		body		TenantProductRequest	true	"Привязка"
//	@Success		201			{object}	ProductViewResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/admin/tenants/{tenantID}/products [post]
func (h *AdminHandler) assignTenantProduct(w http.ResponseWriter, r *http.Request) {
	tenantID, err := parseIDParam(r, "tenantID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req TenantProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	price, err := parsePriceToCents(req.Price)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	isVisible := true
	if req.IsVisible != nil {
		isVisible = *req.IsVisible
	}

	view, err := h.adminUsecase.AssignTenantProduct(r.Context(), tenantID, &usecase.AssignTenantProductReq{
		ProductID:      req.ProductID,
		Price:          price,
		InventoryCount: req.InventoryCount,
		IsVisible:      isVisible,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newProductViewResponse(view))
}

// updateTenantProduct
//
//	@Summary		Обновление привязки товара к тенанту
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			tenantID	path		int						true	"ID тенанта"
//	@Param			productID	path		int						true	"ID товара"
//	@Param			request		body		TenantProductRequest	true	"Привязка"
//	@Success		200			{object}	ProductViewResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/admin/tenants/{tenantID}/products/{productID} [put]
func (h *AdminHandler) updateTenantProduct(w http.ResponseWriter, r *http.Request) {
	tenantID, err := parseIDParam(r, "tenantID")
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req TenantProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	price, err := parsePriceToCents(req.Price)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	isVisible := true
	if req.IsVisible != nil {
		isVisible = *req.IsVisible
	}

	view, err := h.adminUsecase.UpdateTenantProduct(r.Context(), tenantID, productID, &usecase.UpdateTenantProductReq{
		Price:          price,
		InventoryCount: req.InventoryCount,
		IsVisible:      isVisible,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductViewResponse(view))
}

// removeTenantProduct
//
//	@Summary	Отвязка товара от тенанта
//	@Tags		admin
//	@Param		tenantID	path	int	true	"ID тенанта"
//	@Param		productID	path	int	true	"ID товара"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/tenants/{tenantID}/products/{productID} [delete]
func (h *AdminHandler) removeTenantProduct(w http.ResponseWriter, r *http.Request) {
	tenantID, err := parseIDParam(r, "tenantID")
	if err != nil {
		WriteError(w, err)
		return
	}

	productID, err := parseIDParam(r, "productID")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.adminUsecase.RemoveTenantProduct(r.Context(), tenantID, productID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
