package domain

import "time"

// Tenant — независимая витрина, использующая общий каталог товаров.
type Tenant struct {
	ID           int64
	Name         string
	Domain       string
	Description  *string
	BusinessType *string
	IsActive     bool
	CreatedAt    time.Time
}

func NewTenant(name, domain string, description, businessType *string) *Tenant {
	return &Tenant{
		Name:         name,
		Domain:       domain,
		Description:  description,
		BusinessType: businessType,
		IsActive:     true,
	}
}
