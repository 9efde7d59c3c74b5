package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, o model.Order) (model.Order, error)
	// 明細（と明細の商品）・決済・配送を載せて返す
	FindByID(ctx context.Context, id int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	Delete(ctx context.Context, id int64) error
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) ([]model.OrderItem, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p model.Payment) (model.Payment, error)
	FindByID(ctx context.Context, id int64) (model.Payment, error)
	List(ctx context.Context) ([]model.Payment, error)
	Update(ctx context.Context, p model.Payment) error
	Delete(ctx context.Context, id int64) error
}

type ShippingRepository interface {
	Create(ctx context.Context, s model.Shipping) (model.Shipping, error)
	FindByID(ctx context.Context, id int64) (model.Shipping, error)
	List(ctx context.Context) ([]model.Shipping, error)
	Update(ctx context.Context, s model.Shipping) error
	Delete(ctx context.Context, id int64) error
}
