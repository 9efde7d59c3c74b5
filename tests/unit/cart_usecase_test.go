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

func newCartUsecase() (*usecase.CartUsecase, *CartRepoMock, *CartItemRepoMock, *UserRepoMock, *ProductRepoMock) {
	cartRepo := new(CartRepoMock)
	itemRepo := new(CartItemRepoMock)
	userRepo := new(UserRepoMock)
	productRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cartRepo, itemRepo, userRepo, productRepo)
	return uc, cartRepo, itemRepo, userRepo, productRepo
}

// Test: 同一商品の追加は数量加算で1行に収まる
func TestCart_AddSameProductAccumulates(t *testing.T) {
	ctx := context.Background()
	uc, cartRepo, itemRepo, userRepo, productRepo := newCartUsecase()

	userID := int64(1)
	productID := int64(101)
	cartID := int64(5)

	userRepo.On("FindByID", mock.Anything, userID).Return(model.User{ID: userID}, nil)
	productRepo.On("FindByID", mock.Anything, productID).Return(model.Product{ID: productID}, nil)
	cartRepo.On("GetOrCreateByUserID", mock.Anything, userID).Return(model.Cart{ID: cartID, UserID: userID}, false, nil)

	// 1回目: qty 2 → 新規行
	itemRepo.On("AddItem", mock.Anything, cartID, productID, int64(2)).
		Return(model.CartItem{ID: 9, CartID: cartID, ProductID: productID, Quantity: 2}, nil).Once()
	// 2回目: qty 3 → 既存行が 5 に
	itemRepo.On("AddItem", mock.Anything, cartID, productID, int64(3)).
		Return(model.CartItem{ID: 9, CartID: cartID, ProductID: productID, Quantity: 5}, nil).Once()

	first, err := uc.AddItem(ctx, userID, usecase.AddCartItemInput{ProductID: productID, Quantity: ptrInt64(2)})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), first.Quantity)

	second, err := uc.AddItem(ctx, userID, usecase.AddCartItemInput{ProductID: productID, Quantity: ptrInt64(3)})
	assert.NoError(t, err)
	assert.Equal(t, int64(9), second.ID) // 同じ行
	assert.Equal(t, int64(5), second.Quantity)

	itemRepo.AssertExpectations(t)
}

// Test: 数量未指定はデフォルト1
func TestCart_AddItem_DefaultQuantityIsOne(t *testing.T) {
	ctx := context.Background()
	uc, cartRepo, itemRepo, userRepo, productRepo := newCartUsecase()

	userRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1}, nil)
	productRepo.On("FindByID", mock.Anything, int64(101)).Return(model.Product{ID: 101}, nil)
	cartRepo.On("GetOrCreateByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 5}, false, nil)
	itemRepo.On("AddItem", mock.Anything, int64(5), int64(101), int64(1)).
		Return(model.CartItem{ID: 1, Quantity: 1}, nil)

	_, err := uc.AddItem(ctx, 1, usecase.AddCartItemInput{ProductID: 101})
	assert.NoError(t, err)

	itemRepo.AssertExpectations(t)
}

// Test: 数量0以下は弾く
func TestCart_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	ctx := context.Background()
	uc, _, itemRepo, _, _ := newCartUsecase()

	_, err := uc.AddItem(ctx, 1, usecase.AddCartItemInput{ProductID: 101, Quantity: ptrInt64(0)})
	assertErrContains(t, err, "quantity must be > 0")

	itemRepo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Test: 存在しない商品は404
func TestCart_AddItem_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	uc, _, itemRepo, _, productRepo := newCartUsecase()

	productRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddItem(ctx, 1, usecase.AddCartItemInput{ProductID: 999, Quantity: ptrInt64(1)})
	assertErrContains(t, err, "product not found")

	itemRepo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Test: カートの取得or作成。作成フラグが伝わる
func TestCart_GetOrCreate_ReturnsCreatedFlag(t *testing.T) {
	ctx := context.Background()
	uc, cartRepo, _, userRepo, _ := newCartUsecase()

	userRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1}, nil)
	cartRepo.On("GetOrCreateByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 7, UserID: 1}, true, nil)

	cart, created, err := uc.GetOrCreateCart(ctx, 1)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(7), cart.ID)
}

// Test: 存在しないユーザーのカート取得は404
func TestCart_GetOrCreate_UserNotFound(t *testing.T) {
	ctx := context.Background()
	uc, cartRepo, _, userRepo, _ := newCartUsecase()

	userRepo.On("FindByID", mock.Anything, int64(42)).Return(model.User{}, repo.ErrNotFound)

	_, _, err := uc.GetOrCreateCart(ctx, 42)
	assertErrContains(t, err, "user not found")

	cartRepo.AssertNotCalled(t, "GetOrCreateByUserID", mock.Anything, mock.Anything)
}

// Test: 数量変更は置き換え
func TestCart_UpdateItemQuantity_Replaces(t *testing.T) {
	ctx := context.Background()
	uc, _, itemRepo, _, _ := newCartUsecase()

	itemRepo.On("UpdateQuantity", mock.Anything, int64(5), int64(9), int64(4)).
		Return(model.CartItem{ID: 9, Quantity: 4}, nil)

	out, err := uc.UpdateItemQuantity(ctx, 5, 9, 4)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), out.Quantity)
}

func TestCart_UpdateItemQuantity_RejectsZero(t *testing.T) {
	ctx := context.Background()
	uc, _, itemRepo, _, _ := newCartUsecase()

	_, err := uc.UpdateItemQuantity(ctx, 5, 9, 0)
	assertErrContains(t, err, "quantity must be > 0")

	itemRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// Test: 他カートの明細指定は404扱い
func TestCart_RemoveItem_NotFound(t *testing.T) {
	ctx := context.Background()
	uc, _, itemRepo, _, _ := newCartUsecase()

	itemRepo.On("Delete", mock.Anything, int64(5), int64(999)).Return(repo.ErrNotFound)

	err := uc.RemoveItem(ctx, 5, 999)
	assertErrContains(t, err, "cart item not found")
}
