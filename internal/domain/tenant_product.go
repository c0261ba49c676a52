package domain

import "time"

// TenantProduct — коммерческая привязка товара к тенанту.
// Пара (TenantID, ProductID) уникальна; товар доступен тенанту,
// только если существует видимая привязка.
type TenantProduct struct {
	ID             int64
	TenantID       int64
	ProductID      int64 // слабая ссылка на Product
	Price          int64 // Цена хранится в копейках
	InventoryCount int32
	IsVisible      bool
	CreatedAt      time.Time
}

func NewTenantProduct(tenantID, productID, price int64, inventoryCount int32, isVisible bool) *TenantProduct {
	return &TenantProduct{
		TenantID:       tenantID,
		ProductID:      productID,
		Price:          price,
		InventoryCount: inventoryCount,
		IsVisible:      isVisible,
	}
}
