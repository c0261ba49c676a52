package domain

// Category описывает категорию товара
type Category struct {
	ID          int64
	Name        string
	Description *string
}

func NewCategory(name string, description *string) *Category {
	return &Category{
		Name:        name,
		Description: description,
	}
}
