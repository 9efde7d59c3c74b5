package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderUsecase struct {
	txManager repo.TransactionManager
	orderRepo repo.OrderRepository
	userRepo  repo.UserRepository
}

// DI
func NewOrderUsecase(txManager repo.TransactionManager, orderRepo repo.OrderRepository, userRepo repo.UserRepository) *OrderUsecase {
	return &OrderUsecase{txManager: txManager, orderRepo: orderRepo, userRepo: userRepo}
}

type PlaceOrderItemInput struct {
	ProductID int64
	Quantity  int64
}

type PlaceOrderInput struct {
	Items []PlaceOrderItemInput
}

// 注文ヘッダと明細を1トランザクションで作成する。
// 明細は作成時点の商品価格を控えとして持つ。途中で失敗すれば全部ロールバック。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (model.Order, error) {
	if len(in.Items) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "items are required")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "each item needs product_id and quantity > 0")
		}
	}

	var placed model.Order
	err := u.txManager.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Users().FindByID(ctx, userID); err != nil {
			return fromRepoError(err, "user")
		}

		var total float64
		items := make([]model.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if err != nil {
				return fromRepoError(err, "product")
			}
			pid := p.ID
			items = append(items, model.OrderItem{
				ProductID: &pid,
				Quantity:  it.Quantity,
				Price:     p.Price,
			})
			total += p.Price * float64(it.Quantity)
		}

		order, err := r.Orders().Create(ctx, model.Order{
			UserID: userID,
			Total:  total,
			Status: model.OrderStatusPending,
		})
		if err != nil {
			return fromRepoError(err, "order")
		}

		created, err := r.OrderItems().CreateBulk(ctx, order.ID, items)
		if err != nil {
			return fromRepoError(err, "order item")
		}
		order.Items = created
		placed = order
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return model.Order{}, err
		}
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return placed, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, id int64) (model.Order, error) {
	o, err := u.orderRepo.FindByID(ctx, id)
	if err != nil {
		return model.Order{}, fromRepoError(err, "order")
	}
	return o, nil
}

func (u *OrderUsecase) ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if _, err := u.userRepo.FindByID(ctx, userID); err != nil {
		return []model.Order{}, fromRepoError(err, "user")
	}
	orders, err := u.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

func validOrderStatus(s model.OrderStatus) bool {
	switch s {
	case model.OrderStatusPending, model.OrderStatusShipped, model.OrderStatusDelivered, model.OrderStatusCancelled:
		return true
	}
	return false
}

func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (model.Order, error) {
	if !validOrderStatus(status) {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order status")
	}
	if err := u.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return model.Order{}, fromRepoError(err, "order")
	}
	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return model.Order{}, fromRepoError(err, "order")
	}
	return o, nil
}

// 注文削除。明細・決済・配送はDBのカスケードで消える。
func (u *OrderUsecase) DeleteOrder(ctx context.Context, id int64) error {
	if err := u.orderRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "order")
	}
	return nil
}
