package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/laptopmundo/catalog-backend/internal/domain"
	"github.com/laptopmundo/catalog-backend/pkg/e"
	"github.com/laptopmundo/catalog-backend/pkg/logger"
)

// AdminUseCase реализует административное управление каталогом.
// Каждая мутация выполняется в транзакции вместе с записью outbox-события,
// после фиксации инвалидируется кэш затронутого товара.
type AdminUseCase struct {
	productRepo       ProductRepository
	tenantProductRepo TenantProductRepository
	variantRepo       VariantRepository
	specRepo          SpecificationRepository
	imageRepo         ProductImageRepository
	categoryRepo      CategoryRepository
	outboxRepo        OutboxRepository
	cacheRepo         CacheRepository
	imagesInfra       ImagesInfra
	dbPool            transaction.Transactional
	logger            logger.Logger
}

func NewAdminUC(
	productRepo ProductRepository,
	tenantProductRepo TenantProductRepository,
	variantRepo VariantRepository,
	specRepo SpecificationRepository,
	imageRepo ProductImageRepository,
	categoryRepo CategoryRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	imagesInfra ImagesInfra,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		productRepo:       productRepo,
		tenantProductRepo: tenantProductRepo,
		variantRepo:       variantRepo,
		specRepo:          specRepo,
		imageRepo:         imageRepo,
		categoryRepo:      categoryRepo,
		outboxRepo:        outboxRepo,
		cacheRepo:         cacheRepo,
		imagesInfra:       imagesInfra,
		dbPool:            dbPool,
		logger:            logger,
	}
}

// PRODUCTS

// CreateProduct создаёт товар глобального каталога и outbox-событие в одной транзакции.
func (a *AdminUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*AdminProductRes, error) {
	const op = "AdminUseCase.CreateProduct"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrProductNameRequired)
	}

	var created *domain.Product
	err := a.inTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = a.productRepo.Create(txCtx, domain.NewProduct(req.Name, req.Description, req.CategoryID))
		if err != nil {
			return err
		}

		return a.recordEvent(txCtx, ProductUpserted, created.ID, nil)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	categoryName, err := a.categoryNameFor(ctx, created.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewAdminProductRes(created, categoryName), nil
}

// UpdateProduct обновляет товар глобального каталога.
func (a *AdminUseCase) UpdateProduct(ctx context.Context, productID int64, req *UpdateProductReq) (*AdminProductRes, error) {
	const op = "AdminUseCase.UpdateProduct"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrProductNameRequired)
	}

	existing, err := a.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if existing == nil {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.CategoryID = req.CategoryID

	var updated *domain.Product
	err = a.inTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = a.productRepo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		return a.recordEvent(txCtx, ProductUpserted, productID, nil)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, productID)

	categoryName, err := a.categoryNameFor(ctx, updated.CategoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewAdminProductRes(updated, categoryName), nil
}

// DeleteProduct удаляет товар глобального каталога вместе с вариантами,
// характеристиками, изображениями и привязками тенантов. Ссылки между
// коллекциями слабые, поэтому дочерние записи зачищаются в той же транзакции.
func (a *AdminUseCase) DeleteProduct(ctx context.Context, productID int64) error {
	const op = "AdminUseCase.DeleteProduct"

	err := a.inTx(ctx, func(txCtx context.Context) error {
		if err := a.variantRepo.DeleteByProduct(txCtx, productID); err != nil {
			return err
		}
		if err := a.specRepo.DeleteByProduct(txCtx, productID); err != nil {
			return err
		}
		if err := a.imageRepo.DeleteByProduct(txCtx, productID); err != nil {
			return err
		}
		if err := a.tenantProductRepo.DeleteByProduct(txCtx, productID); err != nil {
			return err
		}
		if err := a.productRepo.Delete(txCtx, productID); err != nil {
			return err
		}

		return a.recordEvent(txCtx, ProductDeleted, productID, nil)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, productID)
	return nil
}

// VARIANTS

func (a *AdminUseCase) CreateVariant(ctx context.Context, req *CreateVariantReq) (*domain.ProductVariant, error) {
	const op = "AdminUseCase.CreateVariant"

	if strings.TrimSpace(req.Sku) == "" {
		return nil, e.Wrap(op, e.ErrSkuRequired)
	}
	if req.Price <= 0 {
		return nil, e.Wrap(op, e.ErrInvalidPrice)
	}

	var created *domain.ProductVariant
	err := a.inTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = a.variantRepo.Create(txCtx, domain.NewProductVariant(
			req.ProductID, req.Sku, req.Size, req.Color, req.Model, req.Price, req.InventoryCount,
		))
		if err != nil {
			return err
		}

		return a.recordEvent(txCtx, ProductUpserted, req.ProductID, nil)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, req.ProductID)
	return created, nil
}

func (a *AdminUseCase) UpdateVariant(ctx context.Context, variantID int64, req *UpdateVariantReq) (*domain.ProductVariant, error) {
	const op = "AdminUseCase.UpdateVariant"

	existing, err := a.variantRepo.GetByID(ctx, variantID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if existing == nil {
		return nil, e.Wrap(op, e.ErrVariantNotFound)
	}

	existing.Sku = req.Sku
	existing.Size = req.Size
	existing.Color = req.Color
	existing.Model = req.Model
	existing.Price = req.Price
	existing.InventoryCount = req.InventoryCount
	existing.IsActive = req.IsActive

	var updated *domain.ProductVariant
	err = a.inTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = a.variantRepo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		return a.recordEvent(txCtx, ProductUpserted, existing.ProductID, nil)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, existing.ProductID)
	return updated, nil
}

func (a *AdminUseCase) DeleteVariant(ctx context.Context, variantID int64) error {
	const op = "AdminUseCase.DeleteVariant"

	existing, err := a.variantRepo.GetByID(ctx, variantID)
	if err != nil {
		return e.Wrap(op, err)
	}
	if existing == nil {
		return e.Wrap(op, e.ErrVariantNotFound)
	}

	err = a.inTx(ctx, func(txCtx context.Context) error {
		if err := a.variantRepo.Delete(txCtx, variantID); err != nil {
			return err
		}

		return a.recordEvent(txCtx, ProductUpserted, existing.ProductID, nil)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, existing.ProductID)
	return nil
}

// SPECIFICATIONS

func (a *AdminUseCase) CreateSpecification(ctx context.Context, req *CreateSpecificationReq) (*domain.ProductSpecification, error) {
	const op = "AdminUseCase.CreateSpecification"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrSpecNameRequired)
	}

	var created *domain.ProductSpecification
	err := a.inTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = a.specRepo.Create(txCtx, domain.NewProductSpecification(req.ProductID, req.Name, req.Value))
		if err != nil {
			return err
		}

		return a.recordEvent(txCtx, ProductUpserted, req.ProductID, nil)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, req.ProductID)
	return created, nil
}

func (a *AdminUseCase) UpdateSpecification(ctx context.Context, specID int64, req *UpdateSpecificationReq) (*domain.ProductSpecification, error) {
	const op = "AdminUseCase.UpdateSpecification"

	existing, err := a.specRepo.GetByID(ctx, specID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if existing == nil {
		return nil, e.Wrap(op, e.ErrSpecificationNotFound)
	}

	existing.Name = req.Name
	existing.Value = req.Value

	var updated *domain.ProductSpecification
	err = a.inTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = a.specRepo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		return a.recordEvent(txCtx, ProductUpserted, existing.ProductID, nil)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, existing.ProductID)
	return updated, nil
}

func (a *AdminUseCase) DeleteSpecification(ctx context.Context, specID int64) error {
	const op = "AdminUseCase.DeleteSpecification"

	existing, err := a.specRepo.GetByID(ctx, specID)
	if err != nil {
		return e.Wrap(op, err)
	}
	if existing == nil {
		return e.Wrap(op, e.ErrSpecificationNotFound)
	}

	err = a.inTx(ctx, func(txCtx context.Context) error {
		if err := a.specRepo.Delete(txCtx, specID); err != nil {
			return err
		}

		return a.recordEvent(txCtx, ProductUpserted, existing.ProductID, nil)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, existing.ProductID)
	return nil
}

// IMAGES

func (a *AdminUseCase) CreateImage(ctx context.Context, req *CreateImageReq) (*domain.ProductImage, error) {
	const op = "AdminUseCase.CreateImage"

	if strings.TrimSpace(req.ImageURL) == "" {
		return nil, e.Wrap(op, e.ErrImageURLRequired)
	}

	var created *domain.ProductImage
	err := a.inTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = a.imageRepo.Create(txCtx, domain.NewProductImage(req.ProductID, req.ImageURL, req.IsPrimary))
		if err != nil {
			return err
		}

		return a.recordEvent(txCtx, ProductUpserted, req.ProductID, nil)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, req.ProductID)
	return created, nil
}

func (a *AdminUseCase) UpdateImage(ctx context.Context, imageID int64, req *UpdateImageReq) (*domain.ProductImage, error) {
	const op = "AdminUseCase.UpdateImage"

	existing, err := a.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if existing == nil {
		return nil, e.Wrap(op, e.ErrImageNotFound)
	}

	existing.ImageURL = req.ImageURL
	existing.IsPrimary = req.IsPrimary

	var updated *domain.ProductImage
	err = a.inTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = a.imageRepo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		return a.recordEvent(txCtx, ProductUpserted, existing.ProductID, nil)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, existing.ProductID)
	return updated, nil
}

func (a *AdminUseCase) DeleteImage(ctx context.Context, imageID int64) error {
	const op = "AdminUseCase.DeleteImage"

	existing, err := a.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return e.Wrap(op, err)
	}
	if existing == nil {
		return e.Wrap(op, e.ErrImageNotFound)
	}

	err = a.inTx(ctx, func(txCtx context.Context) error {
		if err := a.imageRepo.Delete(txCtx, imageID); err != nil {
			return err
		}

		return a.recordEvent(txCtx, ProductUpserted, existing.ProductID, nil)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, existing.ProductID)
	return nil
}

// UploadProductImages загружает бинарные изображения в объектное хранилище и
// сохраняет записи ProductImage с публичными URL. При ошибке записи в БД
// уже загруженные объекты удаляются фоновой компенсацией.
func (a *AdminUseCase) UploadProductImages(ctx context.Context, productID int64, images []UploadImage) ([]domain.ProductImage, error) {
	const op = "AdminUseCase.UploadProductImages"

	if len(images) == 0 {
		return nil, e.Wrap(op, e.ErrNoImages)
	}

	product, err := a.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if product == nil {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	uploaded, err := a.imagesInfra.UploadImages(ctx, NewUploadImagesReq(productID, images))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	created := make([]domain.ProductImage, 0, len(uploaded.ImageURLs))
	err = a.inTx(ctx, func(txCtx context.Context) error {
		for _, url := range uploaded.ImageURLs {
			image, err := a.imageRepo.Create(txCtx, domain.NewProductImage(productID, url, false))
			if err != nil {
				return err
			}
			created = append(created, *image)
		}

		return a.recordEvent(txCtx, ProductUpserted, productID, nil)
	})
	if err != nil {
		a.logger.Warnf("Cleaning up orphaned images after transaction failure. product_id: %d, error: %v", productID, e.Wrap(op, err))
		a.imagesInfra.CleanupImages(uploaded.ImagesKeys)
		return nil, e.Wrap(op, err)
	}

	a.invalidateProduct(ctx, productID)
	return created, nil
}

// CATEGORIES

func (a *AdminUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error) {
	const op = "AdminUseCase.CreateCategory"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrCategoryNameRequired)
	}

	var created *domain.Category
	err := a.inTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = a.categoryRepo.Create(txCtx, domain.NewCategory(req.Name, req.Description))
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

func (a *AdminUseCase) UpdateCategory(ctx context.Context, categoryID int64, req *UpdateCategoryReq) (*domain.Category, error) {
	const op = "AdminUseCase.UpdateCategory"

	existing, err := a.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if existing == nil {
		return nil, e.Wrap(op, e.ErrCategoryNotFound)
	}

	existing.Name = req.Name
	existing.Description = req.Description

	var updated *domain.Category
	err = a.inTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = a.categoryRepo.Update(txCtx, existing)
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

func (a *AdminUseCase) DeleteCategory(ctx context.Context, categoryID int64) error {
	const op = "AdminUseCase.DeleteCategory"

	err := a.inTx(ctx, func(txCtx context.Context) error {
		return a.categoryRepo.Delete(txCtx, categoryID)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// TENANT PRODUCTS

// AssignTenantProduct делает товар доступным тенанту с его коммерческими условиями.
func (a *AdminUseCase) AssignTenantProduct(ctx context.Context, tenantID int64, req *AssignTenantProductReq) (*ProductView, error) {
	const op = "AdminUseCase.AssignTenantProduct"

	product, err := a.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if product == nil {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	var link *domain.TenantProduct
	err = a.inTx(ctx, func(txCtx context.Context) error {
		var err error
		link, err = a.tenantProductRepo.Create(txCtx, domain.NewTenantProduct(
			tenantID, req.ProductID, req.Price, req.InventoryCount, req.IsVisible,
		))
		if err != nil {
			return err
		}

		return a.recordEvent(txCtx, TenantProductChanged, req.ProductID, &tenantID)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return a.tenantProductView(ctx, product, link)
}

// UpdateTenantProduct обновляет коммерческие условия привязки товара к тенанту.
func (a *AdminUseCase) UpdateTenantProduct(ctx context.Context, tenantID, productID int64, req *UpdateTenantProductReq) (*ProductView, error) {
	const op = "AdminUseCase.UpdateTenantProduct"

	link, err := a.tenantProductRepo.GetByTenantAndProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if link == nil {
		return nil, e.Wrap(op, e.ErrTenantProductNotFound)
	}

	product, err := a.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if product == nil {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	link.Price = req.Price
	link.InventoryCount = req.InventoryCount
	link.IsVisible = req.IsVisible

	var updated *domain.TenantProduct
	err = a.inTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = a.tenantProductRepo.Update(txCtx, link)
		if err != nil {
			return err
		}

		return a.recordEvent(txCtx, TenantProductChanged, productID, &tenantID)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	a.invalidateTenantProduct(ctx, tenantID, productID)
	return a.tenantProductView(ctx, product, updated)
}

// RemoveTenantProduct убирает товар из каталога тенанта.
func (a *AdminUseCase) RemoveTenantProduct(ctx context.Context, tenantID, productID int64) error {
	const op = "AdminUseCase.RemoveTenantProduct"

	err := a.inTx(ctx, func(txCtx context.Context) error {
		if err := a.tenantProductRepo.DeleteByTenantAndProduct(txCtx, tenantID, productID); err != nil {
			return err
		}

		return a.recordEvent(txCtx, TenantProductRemoved, productID, &tenantID)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	a.invalidateTenantProduct(ctx, tenantID, productID)
	return nil
}

// HELPERS

// inTx выполняет fn в транзакции: Rollback при ошибке, Commit при успехе.
// Объект транзакции передаётся репозиториям через контекст.
func (a *AdminUseCase) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, a.dbPool)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = fn(ctx); err != nil {
		return err
	}

	err = tx.Commit(ctx)
	return err
}

// catalogEventPayload — JSON-содержимое outbox-события изменения каталога.
type catalogEventPayload struct {
	EventID    string          `json:"event_id"`
	EventType  OutboxEventType `json:"event_type"`
	ProductID  int64           `json:"product_id"`
	TenantID   *int64          `json:"tenant_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// recordEvent пишет outbox-событие в той же транзакции, что и мутация.
func (a *AdminUseCase) recordEvent(ctx context.Context, eventType OutboxEventType, productID int64, tenantID *int64) error {
	eventID := uuid.NewString()
	payload, err := json.Marshal(catalogEventPayload{
		EventID:    eventID,
		EventType:  eventType,
		ProductID:  productID,
		TenantID:   tenantID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	_, err = a.outboxRepo.Create(ctx, NewOutboxEvent(eventID, eventType, productID, payload))
	return err
}

// invalidateProduct удаляет из кэша карточки товара у всех тенантов.
func (a *AdminUseCase) invalidateProduct(ctx context.Context, productID int64) {
	if err := a.cacheRepo.DeleteProduct(ctx, productID); err != nil {
		a.logger.Warnf("Failed to invalidate product cache: %v", err)
	}
}

// invalidateTenantProduct удаляет из кэша карточку товара одного тенанта.
func (a *AdminUseCase) invalidateTenantProduct(ctx context.Context, tenantID, productID int64) {
	if err := a.cacheRepo.DeleteTenantProduct(ctx, tenantID, productID); err != nil {
		a.logger.Warnf("Failed to invalidate tenant product cache: %v", err)
	}
}

// categoryNameFor возвращает имя категории по необязательной ссылке.
func (a *AdminUseCase) categoryNameFor(ctx context.Context, categoryID *int64) (*string, error) {
	if categoryID == nil {
		return nil, nil
	}

	category, err := a.categoryRepo.GetByID(ctx, *categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	return &category.Name, nil
}

// tenantProductView собирает проекцию товара после изменения привязки.
func (a *AdminUseCase) tenantProductView(ctx context.Context, product *domain.Product, link *domain.TenantProduct) (*ProductView, error) {
	categoryName, err := a.categoryNameFor(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}

	view := NewProductView(product, link)
	view.CategoryName = categoryName
	return view, nil
}
