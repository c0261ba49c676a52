package converter

import "time"

// ProductDetailRedisModel — JSON-представление карточки товара в Redis.
type ProductDetailRedisModel struct {
	ID              int64               `json:"id"`
	Name            string              `json:"name"`
	Description     *string             `json:"description,omitempty"`
	CategoryID      *int64              `json:"category_id,omitempty"`
	CategoryName    *string             `json:"category_name,omitempty"`
	Price           int64               `json:"price"`
	InventoryCount  int32               `json:"inventory_count"`
	IsVisible       bool                `json:"is_visible"`
	PrimaryImageURL *string             `json:"primary_image_url,omitempty"`
	Variants        []VariantRedisModel `json:"variants"`
	Specifications  []SpecRedisModel    `json:"specifications"`
	Images          []ImageRedisModel   `json:"images"`
}

type VariantRedisModel struct {
	ID             int64     `json:"id"`
	ProductID      int64     `json:"product_id"`
	Sku            string    `json:"sku"`
	Size           *string   `json:"size,omitempty"`
	Color          *string   `json:"color,omitempty"`
	Model          *string   `json:"model,omitempty"`
	Price          int64     `json:"price"`
	InventoryCount int32     `json:"inventory_count"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type SpecRedisModel struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Value     string `json:"value"`
}

type ImageRedisModel struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	ImageURL  string    `json:"image_url"`
	IsPrimary bool      `json:"is_primary"`
	CreatedAt time.Time `json:"created_at"`
}
