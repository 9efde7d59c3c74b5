package e2e

import (
	"context"
	"testing"

	"app/internal/domain/model"
	infraRepo "app/internal/infra/repository"
)

// ユーザー削除でカート・明細・住所・レビュー・注文（と注文明細）が道連れになる。
func Test_User_Delete_CascadesOwnedRows(t *testing.T) {
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
	if _, err := items.AddItem(ctx, cart.ID, product.ID, 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	addr := model.Address{
		UserID:      user.ID,
		AddressType: model.AddressTypeShipping,
		Street:      "1-2-3 Chiyoda",
		City:        "Tokyo",
		Country:     "JP",
	}
	if err := db.Create(&addr).Error; err != nil {
		t.Fatalf("create address failed: %v", err)
	}

	review := model.Review{ProductID: product.ID, UserID: user.ID, Rating: 4}
	if err := db.Create(&review).Error; err != nil {
		t.Fatalf("create review failed: %v", err)
	}

	order := model.Order{UserID: user.ID, Total: 9.99, Status: model.OrderStatusPending}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	item := model.OrderItem{OrderID: &order.ID, ProductID: &product.ID, Quantity: 1, Price: 9.99}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create order item failed: %v", err)
	}

	users := infraRepo.NewUserGormRepository(db)
	if err := users.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete user failed: %v", err)
	}

	checks := []struct {
		name  string
		m     interface{}
		query string
		arg   int64
	}{
		{"carts", &model.Cart{}, "user_id = ?", user.ID},
		{"cart_items", &model.CartItem{}, "cart_id = ?", cart.ID},
		{"addresses", &model.Address{}, "user_id = ?", user.ID},
		{"reviews", &model.Review{}, "user_id = ?", user.ID},
		{"orders", &model.Order{}, "user_id = ?", user.ID},
		{"order_items", &model.OrderItem{}, "order_id = ?", order.ID},
	}
	for _, c := range checks {
		if n := countRows(t, db, c.m, c.query, c.arg); n != 0 {
			t.Fatalf("%s rows after user delete = %d, want 0", c.name, n)
		}
	}
}

// 親カテゴリ削除で商品と子カテゴリは残り、参照だけがNULLに戻る。
func Test_Category_Delete_NullifiesReferences(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	categories := infraRepo.NewCategoryGormRepository(db)

	parent, err := categories.Create(ctx, model.Category{CategoryName: "e2e-parent-" + uniqueSuffix()})
	if err != nil {
		t.Fatalf("create parent failed: %v", err)
	}
	child, err := categories.Create(ctx, model.Category{
		CategoryName:     "e2e-child-" + uniqueSuffix(),
		ParentCategoryID: &parent.ID,
	})
	if err != nil {
		t.Fatalf("create child failed: %v", err)
	}
	product := mustCreateProduct(t, db, &parent.ID)

	if err := categories.Delete(ctx, parent.ID); err != nil {
		t.Fatalf("Delete category failed: %v", err)
	}

	var p model.Product
	if err := db.First(&p, product.ID).Error; err != nil {
		t.Fatalf("product should survive category delete: %v", err)
	}
	if p.CategoryID != nil {
		t.Fatalf("product category_id = %v, want NULL", *p.CategoryID)
	}

	var c model.Category
	if err := db.First(&c, child.ID).Error; err != nil {
		t.Fatalf("child category should survive parent delete: %v", err)
	}
	if c.ParentCategoryID != nil {
		t.Fatalf("child parent_category_id = %v, want NULL", *c.ParentCategoryID)
	}
}

// 商品削除で画像・在庫・カート明細は消えるが、注文明細は会計記録として残る。
func Test_Product_Delete_KeepsOrderItemsAsLedger(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	user := mustCreateUser(t, db)
	product := mustCreateProduct(t, db, nil)

	img := model.ProductImage{ProductID: product.ID, ImageURL: "https://example.com/a.png"}
	if err := db.Create(&img).Error; err != nil {
		t.Fatalf("create image failed: %v", err)
	}

	inventories := infraRepo.NewInventoryGormRepository(db)
	if _, _, err := inventories.Upsert(ctx, product.ID, 3, "tokyo"); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	carts := infraRepo.NewCartGormRepository(db)
	items := infraRepo.NewCartItemGormRepository(db)
	cart, _, err := carts.GetOrCreateByUserID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetOrCreateByUserID failed: %v", err)
	}
	if _, err := items.AddItem(ctx, cart.ID, product.ID, 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	order := model.Order{UserID: user.ID, Total: 9.99, Status: model.OrderStatusPending}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	orderItem := model.OrderItem{OrderID: &order.ID, ProductID: &product.ID, Quantity: 1, Price: 9.99}
	if err := db.Create(&orderItem).Error; err != nil {
		t.Fatalf("create order item failed: %v", err)
	}

	products := infraRepo.NewProductGormRepository(db)
	if err := products.Delete(ctx, product.ID); err != nil {
		t.Fatalf("Delete product failed: %v", err)
	}

	checks := []struct {
		name string
		m    interface{}
	}{
		{"product_images", &model.ProductImage{}},
		{"inventory", &model.Inventory{}},
		{"cart_items", &model.CartItem{}},
	}
	for _, c := range checks {
		if n := countRows(t, db, c.m, "product_id = ?", product.ID); n != 0 {
			t.Fatalf("%s rows after product delete = %d, want 0", c.name, n)
		}
	}

	// 注文明細は残り、参照だけがNULLになる
	var kept model.OrderItem
	if err := db.First(&kept, orderItem.ID).Error; err != nil {
		t.Fatalf("order item should survive product delete: %v", err)
	}
	if kept.ProductID != nil {
		t.Fatalf("order item product_id = %v, want NULL", *kept.ProductID)
	}
	if kept.Price != 9.99 || kept.Quantity != 1 {
		t.Fatalf("order item ledger values changed: %+v", kept)
	}
}
