package domain

import "time"

// Product описывает товар глобального каталога.
// Цена и остатки товара задаются на уровне тенанта (TenantProduct).
type Product struct {
	ID          int64
	Name        string
	Description *string
	CategoryID  *int64 // слабая ссылка на Category, может отсутствовать
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewProduct(name string, description *string, categoryID *int64) *Product {
	return &Product{
		Name:        name,
		Description: description,
		CategoryID:  categoryID,
	}
}
