package usecase

import (
	"time"

	"github.com/laptopmundo/catalog-backend/internal/domain"
)

// CATALOG

// CatalogFilter — фильтр витрины: категория, диапазон цен, поиск, пагинация.
// MinPrice/MaxPrice заданы в копейках.
type CatalogFilter struct {
	CategoryID *int64
	MinPrice   *int64
	MaxPrice   *int64
	Search     string
	IsVisible  *bool // nil означает "только видимые"
	Page       int
	PageSize   int
}

// ProductView — товар в проекции тенанта: базовые поля из Product,
// коммерческие (цена, остатки, видимость) из TenantProduct.
type ProductView struct {
	ID              int64
	Name            string
	Description     *string
	CategoryID      *int64
	CategoryName    *string
	Price           int64 // Цена хранится в копейках
	InventoryCount  int32
	IsVisible       bool
	PrimaryImageURL *string
}

// ProductPage — страница каталога с метаданными пагинации.
type ProductPage struct {
	Items      []ProductView
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

// ProductDetail — полная карточка товара для тенанта.
type ProductDetail struct {
	ProductView
	Variants       []domain.ProductVariant
	Specifications []domain.ProductSpecification
	Images         []domain.ProductImage
}

// ADMIN

// AdminProductRes — товар глобального каталога без коммерческих полей тенанта.
type AdminProductRes struct {
	ID           int64
	Name         string
	Description  *string
	CategoryID   *int64
	CategoryName *string
}

type CreateProductReq struct {
	Name        string
	Description *string
	CategoryID  *int64
}

type UpdateProductReq struct {
	Name        string
	Description *string
	CategoryID  *int64
}

type CreateVariantReq struct {
	ProductID      int64
	Sku            string
	Size           *string
	Color          *string
	Model          *string
	Price          int64
	InventoryCount int32
}

type UpdateVariantReq struct {
	Sku            string
	Size           *string
	Color          *string
	Model          *string
	Price          int64
	InventoryCount int32
	IsActive       bool
}

type CreateSpecificationReq struct {
	ProductID int64
	Name      string
	Value     string
}

type UpdateSpecificationReq struct {
	Name  string
	Value string
}

type CreateImageReq struct {
	ProductID int64
	ImageURL  string
	IsPrimary bool
}

type UpdateImageReq struct {
	ImageURL  string
	IsPrimary bool
}

type CreateCategoryReq struct {
	Name        string
	Description *string
}

type UpdateCategoryReq struct {
	Name        string
	Description *string
}

type AssignTenantProductReq struct {
	ProductID      int64
	Price          int64
	InventoryCount int32
	IsVisible      bool
}

type UpdateTenantProductReq struct {
	Price          int64
	InventoryCount int32
	IsVisible      bool
}

type CreateTenantReq struct {
	Name         string
	Domain       string
	Description  *string
	BusinessType *string
}

type UpdateTenantReq struct {
	Name         string
	Domain       string
	Description  *string
	BusinessType *string
	IsActive     bool
}

// INFRASTRUCTURE

// UploadImage представляет изображение, загруженное через multipart/form-data.
type UploadImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// UploadImagesReq — запрос на загрузку изображений товара в объектное хранилище.
type UploadImagesReq struct {
	ProductID int64
	Images    []UploadImage
}

// UploadImagesRes — результат загрузки: ключи объектов и публичные URL.
type UploadImagesRes struct {
	ImagesKeys []string
	ImageURLs  []string
}

type WriteRawMessageReq struct {
	ProductID int64
	Payload   []byte
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	ProductUpserted      OutboxEventType = "product.upserted"
	ProductDeleted       OutboxEventType = "product.deleted"
	TenantProductChanged OutboxEventType = "tenant_product.changed"
	TenantProductRemoved OutboxEventType = "tenant_product.removed"
)

// OutboxEvent — событие изменения каталога, ожидающее публикации в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string // uuid
	EventType   OutboxEventType
	ProductID   int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// MAPPERS

func NewProductView(product *domain.Product, link *domain.TenantProduct) *ProductView {
	return &ProductView{
		ID:             product.ID,
		Name:           product.Name,
		Description:    product.Description,
		CategoryID:     product.CategoryID,
		Price:          link.Price,
		InventoryCount: link.InventoryCount,
		IsVisible:      link.IsVisible,
	}
}

func NewProductPage(items []ProductView, page, pageSize, totalCount int) *ProductPage {
	totalPages := 0
	if totalCount > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	return &ProductPage{
		Items:      items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

func NewAdminProductRes(product *domain.Product, categoryName *string) *AdminProductRes {
	return &AdminProductRes{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		CategoryID:   product.CategoryID,
		CategoryName: categoryName,
	}
}

func NewUploadImagesReq(productID int64, images []UploadImage) *UploadImagesReq {
	return &UploadImagesReq{
		ProductID: productID,
		Images:    images,
	}
}

func NewUploadImagesRes(imagesKeys, imageURLs []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
		ImageURLs:  imageURLs,
	}
}

func NewUploadImage(data []byte, mimeType string, size int64, name string) *UploadImage {
	return &UploadImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewWriteRawMessageReq(productID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		ProductID: productID,
		Payload:   payload,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, productID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		ProductID: productID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}
