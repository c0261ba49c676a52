package domain

// ProductSpecification — техническая характеристика товара (имя/значение).
type ProductSpecification struct {
	ID        int64
	ProductID int64
	Name      string
	Value     string
}

func NewProductSpecification(productID int64, name, value string) *ProductSpecification {
	return &ProductSpecification{
		ProductID: productID,
		Name:      name,
		Value:     value,
	}
}
