package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request
	ErrTenantRequired       = fmt.Errorf("tenant id is required")
	ErrEmptySearchQuery     = fmt.Errorf("search query is empty")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrCategoryNameRequired = fmt.Errorf("category name is required")
	ErrSkuRequired          = fmt.Errorf("sku is required")
	ErrSpecNameRequired     = fmt.Errorf("specification name is required")
	ErrImageURLRequired     = fmt.Errorf("image url is required")
	ErrNoImages             = fmt.Errorf("no images provided")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrStatusBadRequest     = fmt.Errorf("bad request")

	// 404 Not Found
	ErrProductNotFound       = fmt.Errorf("product not found")
	ErrCategoryNotFound      = fmt.Errorf("category not found")
	ErrTenantNotFound        = fmt.Errorf("tenant not found")
	ErrVariantNotFound       = fmt.Errorf("variant not found")
	ErrSpecificationNotFound = fmt.Errorf("specification not found")
	ErrImageNotFound         = fmt.Errorf("image not found")
	ErrTenantProductNotFound = fmt.Errorf("product is not assigned to this tenant")

	// 409 Conflict
	ErrTenantProductExists = fmt.Errorf("product is already assigned to this tenant")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
