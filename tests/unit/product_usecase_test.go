package unit

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ProductImageRepoMock struct{ mock.Mock }

func (m *ProductImageRepoMock) Create(ctx context.Context, img model.ProductImage) (model.ProductImage, error) {
	args := m.Called(ctx, img)
	out, _ := args.Get(0).(model.ProductImage)
	return out, args.Error(1)
}

func (m *ProductImageRepoMock) FindByID(ctx context.Context, id int64) (model.ProductImage, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(model.ProductImage)
	return out, args.Error(1)
}

func (m *ProductImageRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.ProductImage, error) {
	args := m.Called(ctx, productID)
	out, _ := args.Get(0).([]model.ProductImage)
	return out, args.Error(1)
}

func (m *ProductImageRepoMock) Update(ctx context.Context, img model.ProductImage) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *ProductImageRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newProductUsecase() (*usecase.ProductUsecase, *ProductRepoMock, *ProductImageRepoMock) {
	productRepo := new(ProductRepoMock)
	imageRepo := new(ProductImageRepoMock)
	return usecase.NewProductUsecase(productRepo, imageRepo), productRepo, imageRepo
}

// Test: SKU重複は400
func TestProduct_Create_DuplicateSKU(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _ := newProductUsecase()

	productRepo.On("Create", mock.Anything, mock.Anything).Return(model.Product{}, repo.ErrConflict)

	_, err := uc.CreateProduct(ctx, usecase.CreateProductInput{
		Name:  "Widget",
		SKU:   "WID-001",
		Price: ptrFloat64(9.99),
	})
	assertErrContains(t, err, "duplicate")
}

// Test: 存在しないカテゴリを指すと404（FK違反）
func TestProduct_Create_DanglingCategory(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _ := newProductUsecase()

	productRepo.On("Create", mock.Anything, mock.Anything).Return(model.Product{}, repo.ErrReference)

	_, err := uc.CreateProduct(ctx, usecase.CreateProductInput{
		CategoryID: ptrInt64(999),
		Name:       "Widget",
		SKU:        "WID-001",
		Price:      ptrFloat64(9.99),
	})
	assertErrContains(t, err, "referenced resource not found")
}

// Test: 価格必須・負数不可
func TestProduct_Create_RejectsMissingOrNegativePrice(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _ := newProductUsecase()

	_, err := uc.CreateProduct(ctx, usecase.CreateProductInput{Name: "Widget", SKU: "WID-001"})
	assertErrContains(t, err, "price must be >= 0")

	_, err = uc.CreateProduct(ctx, usecase.CreateProductInput{
		Name:  "Widget",
		SKU:   "WID-001",
		Price: ptrFloat64(-1),
	})
	assertErrContains(t, err, "price must be >= 0")

	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// Test: 部分更新。未指定フィールドは保持
func TestProduct_Update_KeepsUnsetFields(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _ := newProductUsecase()

	productRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{
		ID:          10,
		Name:        "Widget",
		Description: "a widget",
		Price:       9.99,
		SKU:         "WID-001",
		Stock:       5,
	}, nil)
	productRepo.On("Update", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Price == 12.50 && p.Name == "Widget" && p.SKU == "WID-001" && p.Stock == 5
	})).Return(nil)

	out, err := uc.UpdateProduct(ctx, 10, usecase.UpdateProductInput{Price: ptrFloat64(12.50)})
	assert.NoError(t, err)
	assert.Equal(t, "Widget", out.Name)
	assert.Equal(t, 12.50, out.Price)

	productRepo.AssertExpectations(t)
}

// Test: 存在しない商品への画像追加は404。画像テーブルには触らない
func TestProduct_AddImage_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, imageRepo := newProductUsecase()

	productRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddImage(ctx, 999, usecase.CreateProductImageInput{ImageURL: "https://example.com/a.png"})
	assertErrContains(t, err, "product not found")

	imageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProduct_AddImage_RequiresURL(t *testing.T) {
	ctx := context.Background()
	uc, _, imageRepo := newProductUsecase()

	_, err := uc.AddImage(ctx, 10, usecase.CreateProductImageInput{})
	assertErrContains(t, err, "image_url is required")

	imageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
