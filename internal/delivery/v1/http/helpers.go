package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/laptopmundo/catalog-backend/internal/usecase"
	"github.com/laptopmundo/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrTenantRequired):
		return http.StatusBadRequest, e.ErrTenantRequired.Error()
	case errors.Is(err, e.ErrEmptySearchQuery):
		return http.StatusBadRequest, e.ErrEmptySearchQuery.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrCategoryNameRequired):
		return http.StatusBadRequest, e.ErrCategoryNameRequired.Error()
	case errors.Is(err, e.ErrSkuRequired):
		return http.StatusBadRequest, e.ErrSkuRequired.Error()
	case errors.Is(err, e.ErrSpecNameRequired):
		return http.StatusBadRequest, e.ErrSpecNameRequired.Error()
	case errors.Is(err, e.ErrImageURLRequired):
		return http.StatusBadRequest, e.ErrImageURLRequired.Error()
	case errors.Is(err, e.ErrTooManyImages):
		return http.StatusBadRequest, e.ErrTooManyImages.Error()
	case errors.Is(err, e.ErrNoImages):
		return http.StatusBadRequest, e.ErrNoImages.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusBadRequest, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrCategoryNotFound):
		return http.StatusNotFound, e.ErrCategoryNotFound.Error()
	case errors.Is(err, e.ErrTenantNotFound):
		return http.StatusNotFound, e.ErrTenantNotFound.Error()
	case errors.Is(err, e.ErrVariantNotFound):
		return http.StatusNotFound, e.ErrVariantNotFound.Error()
	case errors.Is(err, e.ErrSpecificationNotFound):
		return http.StatusNotFound, e.ErrSpecificationNotFound.Error()
	case errors.Is(err, e.ErrImageNotFound):
		return http.StatusNotFound, e.ErrImageNotFound.Error()
	case errors.Is(err, e.ErrTenantProductNotFound):
		return http.StatusNotFound, e.ErrTenantProductNotFound.Error()
	case errors.Is(err, e.ErrTenantProductExists):
		return http.StatusConflict, e.ErrTenantProductExists.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceToCents переводит строку вида "599.99" или "600" в int64 копеек.
// Отклоняет отрицательные значения, более двух знаков после запятой
// и цены свыше миллиарда.
func parsePriceToCents(s string) (int64, error) {
	if strings.TrimSpace(s) == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0)
	return cents.IntPart(), nil
}

// formatPrice переводит копейки в строку вида "599.99" для ответов API.
func formatPrice(cents int64) string {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// parseTenantID читает обязательный query-параметр tenantId.
func parseTenantID(r *http.Request) (int64, error) {
	raw := r.URL.Query().Get("tenantId")
	if raw == "" {
		return 0, e.ErrTenantRequired
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrTenantRequired
	}

	return id, nil
}

// parseIDParam читает числовой URL-параметр chi.
func parseIDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrStatusBadRequest
	}

	return id, nil
}

// parsePageParams читает page и pageSize; значения вне диапазона
// нормализуются в usecase, здесь отклоняется только мусор.
func parsePageParams(r *http.Request) (int, int, error) {
	page, err := parseOptionalInt(r, "page", 1)
	if err != nil {
		return 0, 0, err
	}

	pageSize, err := parseOptionalInt(r, "pageSize", 20)
	if err != nil {
		return 0, 0, err
	}

	return page, pageSize, nil
}

func parseOptionalInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, e.ErrStatusBadRequest
	}

	return v, nil
}

// parseOptionalID читает необязательный числовой query-параметр (nil, если отсутствует).
func parseOptionalID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, e.ErrStatusBadRequest
	}

	return &v, nil
}

// parseOptionalPrice читает необязательный ценовой query-параметр в копейки.
func parseOptionalPrice(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	cents, err := parsePriceToCents(raw)
	if err != nil {
		return nil, err
	}

	return &cents, nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	return r.ParseMultipartForm(maxMemory)
}

func parseImages(files []*multipart.FileHeader) ([]usecase.UploadImage, error) {
	const (
		maxImageCount = 10
		maxFileSize   = 15 << 20
	)

	if len(files) == 0 {
		return nil, e.ErrNoImages
	}
	if len(files) > maxImageCount {
		return nil, e.ErrTooManyImages
	}

	images := make([]usecase.UploadImage, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxFileSize)
		if err != nil {
			return nil, err
		}
		images = append(images, *usecase.NewUploadImage(data, mimeType, int64(len(data)), fh.Filename))
	}
	return images, nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
	}
	return nil
}
