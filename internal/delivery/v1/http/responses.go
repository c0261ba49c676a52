package http

import (
	"github.com/laptopmundo/catalog-backend/internal/domain"
	"github.com/laptopmundo/catalog-backend/internal/usecase"
)

// Ответы API. Цены сериализуются строками в рублях с двумя знаками,
// внутри приложения они хранятся в копейках.

type ProductViewResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	CategoryID      *int64  `json:"categoryId,omitempty"`
	CategoryName    *string `json:"categoryName,omitempty"`
	Price           string  `json:"price"`
	InventoryCount  int32   `json:"inventoryCount"`
	PrimaryImageURL *string `json:"primaryImageUrl,omitempty"`
}

type ProductPageResponse struct {
	Items      []ProductViewResponse `json:"items"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"pageSize"`
	TotalCount int                   `json:"totalCount"`
	TotalPages int                   `json:"totalPages"`
}

type VariantResponse struct {
	ID             int64   `json:"id"`
	ProductID      int64   `json:"productId"`
	Sku            string  `json:"sku"`
	Size           *string `json:"size,omitempty"`
	Color          *string `json:"color,omitempty"`
	Model          *string `json:"model,omitempty"`
	Price          string  `json:"price"`
	InventoryCount int32   `json:"inventoryCount"`
	IsActive       bool    `json:"isActive"`
}

type SpecificationResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Value     string `json:"value"`
}

type ImageResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	ImageURL  string `json:"imageUrl"`
	IsPrimary bool   `json:"isPrimary"`
}

type ProductDetailResponse struct {
	ProductViewResponse
	Variants       []VariantResponse       `json:"variants"`
	Specifications []SpecificationResponse `json:"specifications"`
	Images         []ImageResponse         `json:"images"`
}

type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type AdminProductResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	CategoryID   *int64  `json:"categoryId,omitempty"`
	CategoryName *string `json:"categoryName,omitempty"`
}

type TenantResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Domain       string  `json:"domain"`
	Description  *string `json:"description,omitempty"`
	BusinessType *string `json:"businessType,omitempty"`
	IsActive     bool    `json:"isActive"`
}

type UploadedImagesResponse struct {
	Images []ImageResponse `json:"images"`
}

func newProductViewResponse(v *usecase.ProductView) ProductViewResponse {
	return ProductViewResponse{
		ID:              v.ID,
		Name:            v.Name,
		Description:     v.Description,
		CategoryID:      v.CategoryID,
		CategoryName:    v.CategoryName,
		Price:           formatPrice(v.Price),
		InventoryCount:  v.InventoryCount,
		PrimaryImageURL: v.PrimaryImageURL,
	}
}

func newProductPageResponse(page *usecase.ProductPage) *ProductPageResponse {
	items := make([]ProductViewResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, newProductViewResponse(&page.Items[i]))
	}

	return &ProductPageResponse{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
	}
}

func newProductViewsResponse(views []usecase.ProductView) []ProductViewResponse {
	items := make([]ProductViewResponse, 0, len(views))
	for i := range views {
		items = append(items, newProductViewResponse(&views[i]))
	}
	return items
}

func newVariantResponse(v *domain.ProductVariant) VariantResponse {
	return VariantResponse{
		ID:             v.ID,
		ProductID:      v.ProductID,
		Sku:            v.Sku,
		Size:           v.Size,
		Color:          v.Color,
		Model:          v.Model,
		Price:          formatPrice(v.Price),
		InventoryCount: v.InventoryCount,
		IsActive:       v.IsActive,
	}
}

func newSpecificationResponse(s *domain.ProductSpecification) SpecificationResponse {
	return SpecificationResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Name:      s.Name,
		Value:     s.Value,
	}
}

func newImageResponse(img *domain.ProductImage) ImageResponse {
	return ImageResponse{
		ID:        img.ID,
		ProductID: img.ProductID,
		ImageURL:  img.ImageURL,
		IsPrimary: img.IsPrimary,
	}
}

func newProductDetailResponse(d *usecase.ProductDetail) *ProductDetailResponse {
	variants := make([]VariantResponse, 0, len(d.Variants))
	for i := range d.Variants {
		variants = append(variants, newVariantResponse(&d.Variants[i]))
	}

	specs := make([]SpecificationResponse, 0, len(d.Specifications))
	for i := range d.Specifications {
		specs = append(specs, newSpecificationResponse(&d.Specifications[i]))
	}

	images := make([]ImageResponse, 0, len(d.Images))
	for i := range d.Images {
		images = append(images, newImageResponse(&d.Images[i]))
	}

	return &ProductDetailResponse{
		ProductViewResponse: newProductViewResponse(&d.ProductView),
		Variants:            variants,
		Specifications:      specs,
		Images:              images,
	}
}

func newCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func newCategoriesResponse(categories []domain.Category) []CategoryResponse {
	items := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, newCategoryResponse(&categories[i]))
	}
	return items
}

func newAdminProductResponse(p *usecase.AdminProductRes) *AdminProductResponse {
	return &AdminProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
	}
}

func newTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:           t.ID,
		Name:         t.Name,
		Domain:       t.Domain,
		Description:  t.Description,
		BusinessType: t.BusinessType,
		IsActive:     t.IsActive,
	}
}

func newTenantsResponse(tenants []domain.Tenant) []TenantResponse {
	items := make([]TenantResponse, 0, len(tenants))
	for i := range tenants {
		items = append(items, newTenantResponse(&tenants[i]))
	}
	return items
}

func newUploadedImagesResponse(images []domain.ProductImage) *UploadedImagesResponse {
	items := make([]ImageResponse, 0, len(images))
	for i := range images {
		items = append(items, newImageResponse(&images[i]))
	}
	return &UploadedImagesResponse{Images: items}
}
