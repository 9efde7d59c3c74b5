package unit

import (
	"context"
	"errors"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test: 注文作成。明細価格は商品の現在価格の控え、合計も計算される
func TestOrder_Place_ComputesTotalFromProducts(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	itemsRepo := new(OrderItemRepoMock)
	usersRepo := new(UserRepoMock)
	productsRepo := new(ProductRepoMock)

	tx.Repos = &TxReposMock{
		orders:     ordersRepo,
		orderItems: itemsRepo,
		users:      usersRepo,
		products:   productsRepo,
	}
	tx.On("WithinTx", mock.Anything).Return(nil)

	userID := int64(1)

	usersRepo.On("FindByID", mock.Anything, userID).Return(model.User{ID: userID}, nil)
	productsRepo.On("FindByID", mock.Anything, int64(100)).Return(model.Product{ID: 100, Price: 10.50}, nil)
	productsRepo.On("FindByID", mock.Anything, int64(101)).Return(model.Product{ID: 101, Price: 3.25}, nil)

	// 10.50*2 + 3.25*1 = 24.25
	ordersRepo.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.UserID == userID && o.Total == 24.25 && o.Status == model.OrderStatusPending
	})).Return(model.Order{ID: 50, UserID: userID, Total: 24.25, Status: model.OrderStatusPending}, nil)

	itemsRepo.On("CreateBulk", mock.Anything, int64(50), mock.MatchedBy(func(items []model.OrderItem) bool {
		return len(items) == 2 && items[0].Price == 10.50 && items[0].Quantity == 2
	})).Return([]model.OrderItem{
		{ID: 1, OrderID: ptrInt64(50), ProductID: ptrInt64(100), Quantity: 2, Price: 10.50},
		{ID: 2, OrderID: ptrInt64(50), ProductID: ptrInt64(101), Quantity: 1, Price: 3.25},
	}, nil)

	uc := usecase.NewOrderUsecase(tx, ordersRepo, usersRepo)

	out, err := uc.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItemInput{
			{ProductID: 100, Quantity: 2},
			{ProductID: 101, Quantity: 1},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(50), out.ID)
	assert.Equal(t, 24.25, out.Total)
	assert.Equal(t, 2, len(out.Items))

	tx.AssertExpectations(t)
	ordersRepo.AssertExpectations(t)
	itemsRepo.AssertExpectations(t)
}

// Test: 明細の商品が無ければヘッダも作られない（Txごと失敗）
func TestOrder_Place_RollsBackWhenProductMissing(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	itemsRepo := new(OrderItemRepoMock)
	usersRepo := new(UserRepoMock)
	productsRepo := new(ProductRepoMock)

	tx.Repos = &TxReposMock{
		orders:     ordersRepo,
		orderItems: itemsRepo,
		users:      usersRepo,
		products:   productsRepo,
	}
	tx.On("WithinTx", mock.Anything).Return(nil)

	usersRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1}, nil)
	productsRepo.On("FindByID", mock.Anything, int64(100)).Return(model.Product{ID: 100, Price: 5}, nil)
	productsRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewOrderUsecase(tx, ordersRepo, usersRepo)

	_, err := uc.PlaceOrder(ctx, 1, usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItemInput{
			{ProductID: 100, Quantity: 1},
			{ProductID: 999, Quantity: 1},
		},
	})
	assertErrContains(t, err, "product not found")

	// エラー時はヘッダも明細も作らない
	ordersRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	itemsRepo.AssertNotCalled(t, "CreateBulk", mock.Anything, mock.Anything, mock.Anything)
}

// Test: 明細作成が落ちたらエラーが返る（Txでロールバックされる前提）
func TestOrder_Place_ItemInsertFailure(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	itemsRepo := new(OrderItemRepoMock)
	usersRepo := new(UserRepoMock)
	productsRepo := new(ProductRepoMock)

	tx.Repos = &TxReposMock{
		orders:     ordersRepo,
		orderItems: itemsRepo,
		users:      usersRepo,
		products:   productsRepo,
	}
	tx.On("WithinTx", mock.Anything).Return(nil)

	usersRepo.On("FindByID", mock.Anything, int64(1)).Return(model.User{ID: 1}, nil)
	productsRepo.On("FindByID", mock.Anything, int64(100)).Return(model.Product{ID: 100, Price: 5}, nil)
	ordersRepo.On("Create", mock.Anything, mock.Anything).Return(model.Order{ID: 50}, nil)
	itemsRepo.On("CreateBulk", mock.Anything, int64(50), mock.Anything).Return([]model.OrderItem(nil), errors.New("db down"))

	uc := usecase.NewOrderUsecase(tx, ordersRepo, usersRepo)

	_, err := uc.PlaceOrder(ctx, 1, usecase.PlaceOrderInput{
		Items: []usecase.PlaceOrderItemInput{{ProductID: 100, Quantity: 1}},
	})
	assertErrContains(t, err, "db error")
}

// Test: 空の注文は弾く
func TestOrder_Place_RejectsEmptyItems(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	usersRepo := new(UserRepoMock)

	uc := usecase.NewOrderUsecase(tx, ordersRepo, usersRepo)

	_, err := uc.PlaceOrder(context.Background(), 1, usecase.PlaceOrderInput{})
	assertErrContains(t, err, "items are required")

	tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

// Test: 不正なステータス値は弾く
func TestOrder_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	usersRepo := new(UserRepoMock)

	uc := usecase.NewOrderUsecase(tx, ordersRepo, usersRepo)

	_, err := uc.UpdateOrderStatus(context.Background(), 1, model.OrderStatus("Teleported"))
	assertErrContains(t, err, "invalid order status")

	ordersRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrder_UpdateStatus_Success(t *testing.T) {
	ctx := context.Background()

	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	usersRepo := new(UserRepoMock)

	ordersRepo.On("UpdateStatus", mock.Anything, int64(50), model.OrderStatusShipped).Return(nil)
	ordersRepo.On("FindByID", mock.Anything, int64(50)).
		Return(model.Order{ID: 50, Status: model.OrderStatusShipped}, nil)

	uc := usecase.NewOrderUsecase(tx, ordersRepo, usersRepo)

	out, err := uc.UpdateOrderStatus(ctx, 50, model.OrderStatusShipped)
	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, out.Status)

	ordersRepo.AssertExpectations(t)
}

func TestOrder_UpdateStatus_NotFound(t *testing.T) {
	tx := new(TxManagerMock)
	ordersRepo := new(OrderRepoMock)
	usersRepo := new(UserRepoMock)

	ordersRepo.On("UpdateStatus", mock.Anything, int64(99), model.OrderStatusShipped).Return(repo.ErrNotFound)

	uc := usecase.NewOrderUsecase(tx, ordersRepo, usersRepo)

	_, err := uc.UpdateOrderStatus(context.Background(), 99, model.OrderStatusShipped)
	assertErrContains(t, err, "order not found")
}
