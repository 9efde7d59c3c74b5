package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	// ユーザーのカートを取得し、無ければ作成。2番目の戻り値は作成したかどうか。
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, bool, error)
	// 明細と各明細の商品を載せて返す
	FindByUserID(ctx context.Context, userID int64) (model.Cart, error)
}

type CartItemRepository interface {
	// 同一 (cart_id, product_id) が既にあれば数量を加算、無ければ新規行。
	AddItem(ctx context.Context, cartID, productID, quantity int64) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartID, itemID, quantity int64) (model.CartItem, error)
	Delete(ctx context.Context, cartID, itemID int64) error
}
