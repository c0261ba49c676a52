package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	CategoryID  *int64     `db:"category_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// TenantProductModel представляет запись таблицы tenant_products в PostgreSQL.
type TenantProductModel struct {
	ID             int64     `db:"id"`
	TenantID       int64     `db:"tenant_id"`
	ProductID      int64     `db:"product_id"`
	Price          int64     `db:"price"`
	InventoryCount int32     `db:"inventory_count"`
	IsVisible      bool      `db:"is_visible"`
	CreatedAt      time.Time `db:"created_at"`
}

// VariantModel представляет запись таблицы product_variants в PostgreSQL.
type VariantModel struct {
	ID             int64     `db:"id"`
	ProductID      int64     `db:"product_id"`
	Sku            string    `db:"sku"`
	Size           *string   `db:"size"`
	Color          *string   `db:"color"`
	Model          *string   `db:"model"`
	Price          int64     `db:"price"`
	InventoryCount int32     `db:"inventory_count"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
}

// SpecificationModel представляет запись таблицы product_specifications в PostgreSQL.
type SpecificationModel struct {
	ID        int64  `db:"id"`
	ProductID int64  `db:"product_id"`
	Name      string `db:"name"`
	Value     string `db:"value"`
}

// ProductImageModel представляет запись таблицы product_images в PostgreSQL.
type ProductImageModel struct {
	ID        int64     `db:"id"`
	ProductID int64     `db:"product_id"`
	ImageURL  string    `db:"image_url"`
	IsPrimary bool      `db:"is_primary"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
}

// TenantModel представляет запись таблицы tenants в PostgreSQL.
type TenantModel struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Domain       string    `db:"domain"`
	Description  *string   `db:"description"`
	BusinessType *string   `db:"business_type"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	ProductID   int64      `db:"product_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
