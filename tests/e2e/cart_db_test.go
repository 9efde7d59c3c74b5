package e2e

import (
	"context"
	"testing"

	"app/internal/domain/model"
	infraRepo "app/internal/infra/repository"
)

// カートはユーザーにつき1つ。2回目の取得は新規作成せず既存を返す。
func Test_Cart_GetOrCreate_ReturnsSameCart(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	user := mustCreateUser(t, db)
	carts := infraRepo.NewCartGormRepository(db)

	first, created, err := carts.GetOrCreateByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetOrCreateByUserID failed: %v", err)
	}
	if !created {
		t.Fatalf("first call should create a cart")
	}

	second, created, err := carts.GetOrCreateByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetOrCreateByUserID (2nd) failed: %v", err)
	}
	if created {
		t.Fatalf("second call should return the existing cart")
	}
	if first.ID != second.ID {
		t.Fatalf("cart id changed: first=%d second=%d", first.ID, second.ID)
	}

	if n := countRows(t, db, &model.Cart{}, "user_id = ?", user.ID); n != 1 {
		t.Fatalf("cart rows = %d, want 1", n)
	}
}

// 同じ商品を2回入れたら行は増えず数量が加算される。
func Test_Cart_AddItem_MergesIntoSingleRow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	user := mustCreateUser(t, db)
	product := mustCreateProduct(t, db, nil)

	carts := infraRepo.NewCartGormRepository(db)
	items := infraRepo.NewCartItemGormRepository(db)

	cart, _, err := carts.GetOrCreateByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetOrCreateByUserID failed: %v", err)
	}

	first, err := items.AddItem(ctx, cart.ID, product.ID, 2)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if first.Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", first.Quantity)
	}

	second, err := items.AddItem(ctx, cart.ID, product.ID, 3)
	if err != nil {
		t.Fatalf("AddItem (2nd) failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("a new row was created: first=%d second=%d", first.ID, second.ID)
	}
	if second.Quantity != 5 {
		t.Fatalf("quantity = %d, want 5", second.Quantity)
	}

	if n := countRows(t, db, &model.CartItem{}, "cart_id = ? AND product_id = ?", cart.ID, product.ID); n != 1 {
		t.Fatalf("cart_items rows = %d, want 1", n)
	}

	// カート読み出しで明細と商品が載っていること
	loaded, err := carts.FindByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByUserID failed: %v", err)
	}
	if len(loaded.Items) != 1 {
		t.Fatalf("loaded items = %d, want 1", len(loaded.Items))
	}
	if loaded.Items[0].Product == nil || loaded.Items[0].Product.ID != product.ID {
		t.Fatalf("item product not preloaded: %+v", loaded.Items[0])
	}
}
