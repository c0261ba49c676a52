package usecase

import (
	"context"

	"github.com/laptopmundo/catalog-backend/pkg/e"
)

// resolveOverride собирает проекцию товара для тенанта: базовые поля берутся
// из Product, коммерческие (цена, остатки, видимость) всегда замещаются
// значениями из TenantProduct.
//
// Возвращает (nil, nil), если привязки нет или она скрыта — это обычный
// "не найдено", а не ошибка. Привязка без товара (нарушение ссылочной
// целостности) логируется и тоже даёт nil-результат.
func (c *CatalogUseCase) resolveOverride(ctx context.Context, tenantID, productID int64) (*ProductView, error) {
	const op = "CatalogUseCase.resolveOverride"

	link, err := c.tenantProductRepo.GetByTenantAndProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if link == nil || !link.IsVisible {
		return nil, nil
	}

	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if product == nil {
		c.logger.Warnf("%s: tenant product %d references missing product %d, skipping", op, link.ID, productID)
		return nil, nil
	}

	return NewProductView(product, link), nil
}
