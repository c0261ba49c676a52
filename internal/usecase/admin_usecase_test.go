package usecase

import (
	"context"
	"testing"

	"github.com/laptopmundo/catalog-backend/internal/domain"
	"github.com/laptopmundo/catalog-backend/pkg/e"
	"github.com/stretchr/testify/require"
)

// Тесты покрывают валидацию и проверки существования, которые выполняются
// до открытия транзакции; транзакционные пути проверяются интеграционно.

func newAdminFixture() (*AdminUseCase, *fakeProductRepo, *fakeTenantProductRepo, *fakeVariantRepo, *fakeSpecRepo, *fakeImageRepo, *fakeCategoryRepo) {
	productRepo := newFakeProductRepo()
	tenantProductRepo := &fakeTenantProductRepo{}
	variantRepo := &fakeVariantRepo{}
	specRepo := &fakeSpecRepo{}
	imageRepo := &fakeImageRepo{}
	categoryRepo := newFakeCategoryRepo()

	uc := NewAdminUC(
		productRepo, tenantProductRepo, variantRepo, specRepo, imageRepo, categoryRepo,
		nil, newFakeCacheRepo(), nil, nil, nopLogger{},
	)
	return uc, productRepo, tenantProductRepo, variantRepo, specRepo, imageRepo, categoryRepo
}

func TestCreateProduct_NameRequired(t *testing.T) {
	uc, _, _, _, _, _, _ := newAdminFixture()

	_, err := uc.CreateProduct(context.Background(), &CreateProductReq{Name: "  "})
	require.ErrorIs(t, err, e.ErrProductNameRequired)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	uc, _, _, _, _, _, _ := newAdminFixture()

	_, err := uc.UpdateProduct(context.Background(), 42, &UpdateProductReq{Name: "Laptop"})
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCreateVariant_Validation(t *testing.T) {
	uc, _, _, _, _, _, _ := newAdminFixture()

	_, err := uc.CreateVariant(context.Background(), &CreateVariantReq{ProductID: 1, Sku: "", Price: 100})
	require.ErrorIs(t, err, e.ErrSkuRequired)

	_, err = uc.CreateVariant(context.Background(), &CreateVariantReq{ProductID: 1, Sku: "SKU-1", Price: 0})
	require.ErrorIs(t, err, e.ErrInvalidPrice)
}

func TestUpdateVariant_NotFound(t *testing.T) {
	uc, _, _, _, _, _, _ := newAdminFixture()

	_, err := uc.UpdateVariant(context.Background(), 5, &UpdateVariantReq{Sku: "SKU-1", Price: 100})
	require.ErrorIs(t, err, e.ErrVariantNotFound)

	err = uc.DeleteVariant(context.Background(), 5)
	require.ErrorIs(t, err, e.ErrVariantNotFound)
}

func TestCreateSpecification_NameRequired(t *testing.T) {
	uc, _, _, _, _, _, _ := newAdminFixture()

	_, err := uc.CreateSpecification(context.Background(), &CreateSpecificationReq{ProductID: 1, Name: " ", Value: "x"})
	require.ErrorIs(t, err, e.ErrSpecNameRequired)
}

func TestUpdateSpecification_NotFound(t *testing.T) {
	uc, _, _, _, _, _, _ := newAdminFixture()

	_, err := uc.UpdateSpecification(context.Background(), 9, &UpdateSpecificationReq{Name: "RAM", Value: "16GB"})
	require.ErrorIs(t, err, e.ErrSpecificationNotFound)
}

func TestCreateImage_URLRequired(t *testing.T) {
	uc, _, _, _, _, _, _ := newAdminFixture()

	_, err := uc.CreateImage(context.Background(), &CreateImageReq{ProductID: 1, ImageURL: ""})
	require.ErrorIs(t, err, e.ErrImageURLRequired)
}

func TestUpdateImage_NotFound(t *testing.T) {
	uc, _, _, _, _, _, _ := newAdminFixture()

	_, err := uc.UpdateImage(context.Background(), 3, &UpdateImageReq{ImageURL: "https://cdn.example.com/1.jpg"})
	require.ErrorIs(t, err, e.ErrImageNotFound)

	err = uc.DeleteImage(context.Background(), 3)
	require.ErrorIs(t, err, e.ErrImageNotFound)
}

func TestUploadProductImages_Validation(t *testing.T) {
	uc, _, _, _, _, _, _ := newAdminFixture()

	_, err := uc.UploadProductImages(context.Background(), 1, nil)
	require.ErrorIs(t, err, e.ErrNoImages)

	images := []UploadImage{{Data: []byte{0xFF}, MimeType: "image/jpeg", Size: 1, Name: "a.jpg"}}
	_, err = uc.UploadProductImages(context.Background(), 1, images)
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCreateCategory_NameRequired(t *testing.T) {
	uc, _, _, _, _, _, _ := newAdminFixture()

	_, err := uc.CreateCategory(context.Background(), &CreateCategoryReq{Name: ""})
	require.ErrorIs(t, err, e.ErrCategoryNameRequired)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	uc, _, _, _, _, _, _ := newAdminFixture()

	_, err := uc.UpdateCategory(context.Background(), 8, &UpdateCategoryReq{Name: "Gaming"})
	require.ErrorIs(t, err, e.ErrCategoryNotFound)
}

func TestAssignTenantProduct_ProductNotFound(t *testing.T) {
	uc, _, _, _, _, _, _ := newAdminFixture()

	_, err := uc.AssignTenantProduct(context.Background(), 7, &AssignTenantProductReq{ProductID: 1, Price: 100})
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestUpdateTenantProduct_LinkNotFound(t *testing.T) {
	uc, productRepo, _, _, _, _, _ := newAdminFixture()
	productRepo.products[1] = domain.Product{ID: 1, Name: "Laptop"}
	productRepo.nextID = 1

	_, err := uc.UpdateTenantProduct(context.Background(), 7, 1, &UpdateTenantProductReq{Price: 100})
	require.ErrorIs(t, err, e.ErrTenantProductNotFound)
}
