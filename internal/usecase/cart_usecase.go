package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CartUsecase struct {
	cartRepo     repo.CartRepository
	cartItemRepo repo.CartItemRepository
	userRepo     repo.UserRepository
	productRepo  repo.ProductRepository
}

// DI
func NewCartUsecase(cartRepo repo.CartRepository, cartItemRepo repo.CartItemRepository, userRepo repo.UserRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo, cartItemRepo: cartItemRepo, userRepo: userRepo, productRepo: productRepo}
}

// ユーザーのカートを返す。まだ無ければ作る。2番目の戻り値は作成したかどうか。
func (u *CartUsecase) GetOrCreateCart(ctx context.Context, userID int64) (model.Cart, bool, error) {
	if _, err := u.userRepo.FindByID(ctx, userID); err != nil {
		return model.Cart{}, false, fromRepoError(err, "user")
	}
	cart, created, err := u.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return model.Cart{}, false, fromRepoError(err, "cart")
	}
	return cart, created, nil
}

// 明細（と各商品）込みでカートを返す
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (model.Cart, error) {
	if _, err := u.userRepo.FindByID(ctx, userID); err != nil {
		return model.Cart{}, fromRepoError(err, "user")
	}
	cart, err := u.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return model.Cart{}, fromRepoError(err, "cart")
	}
	return cart, nil
}

type AddCartItemInput struct {
	ProductID int64
	Quantity  *int64
}

// 同一商品が既にカートにあれば数量を加算する
func (u *CartUsecase) AddItem(ctx context.Context, userID int64, in AddCartItemInput) (model.CartItem, error) {
	if in.ProductID <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "product_id is required")
	}
	qty := int64(1)
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	if qty <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
	}

	if _, err := u.productRepo.FindByID(ctx, in.ProductID); err != nil {
		return model.CartItem{}, fromRepoError(err, "product")
	}
	cart, _, err := u.GetOrCreateCart(ctx, userID)
	if err != nil {
		return model.CartItem{}, err
	}

	item, err := u.cartItemRepo.AddItem(ctx, cart.ID, in.ProductID, qty)
	if err != nil {
		return model.CartItem{}, fromRepoError(err, "cart item")
	}
	return item, nil
}

// 数量の置き換え。加算ではない。
func (u *CartUsecase) UpdateItemQuantity(ctx context.Context, cartID, itemID int64, quantity int64) (model.CartItem, error) {
	if quantity <= 0 {
		return model.CartItem{}, NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
	}
	item, err := u.cartItemRepo.UpdateQuantity(ctx, cartID, itemID, quantity)
	if err != nil {
		return model.CartItem{}, fromRepoError(err, "cart item")
	}
	return item, nil
}

func (u *CartUsecase) RemoveItem(ctx context.Context, cartID, itemID int64) error {
	if err := u.cartItemRepo.Delete(ctx, cartID, itemID); err != nil {
		return fromRepoError(err, "cart item")
	}
	return nil
}
