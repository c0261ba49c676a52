package domain

import "time"

// ProductVariant описывает продаваемую конфигурацию товара.
type ProductVariant struct {
	ID             int64
	ProductID      int64
	Sku            string
	Size           *string
	Color          *string
	Model          *string
	Price          int64 // Цена хранится в копейках
	InventoryCount int32
	IsActive       bool
	CreatedAt      time.Time
}

func NewProductVariant(productID int64, sku string, size, color, model *string, price int64, inventoryCount int32) *ProductVariant {
	return &ProductVariant{
		ProductID:      productID,
		Sku:            sku,
		Size:           size,
		Color:          color,
		Model:          model,
		Price:          price,
		InventoryCount: inventoryCount,
		IsActive:       true,
	}
}
