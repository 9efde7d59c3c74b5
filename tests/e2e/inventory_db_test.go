package e2e

import (
	"context"
	"errors"
	"testing"

	"app/internal/domain/model"
	infraRepo "app/internal/infra/repository"
	repo "app/internal/repository"
)

// 在庫は商品につき1行。2回目のアップサートは同じ行を上書きする。
func Test_Inventory_Upsert_KeepsSingleRow(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	product := mustCreateProduct(t, db, nil)
	inventories := infraRepo.NewInventoryGormRepository(db)

	first, created, err := inventories.Upsert(ctx, product.ID, 5, "tokyo")
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if !created {
		t.Fatalf("first upsert should create a row")
	}

	second, created, err := inventories.Upsert(ctx, product.ID, 7, "osaka")
	if err != nil {
		t.Fatalf("Upsert (2nd) failed: %v", err)
	}
	if created {
		t.Fatalf("second upsert should update, not create")
	}
	if second.ID != first.ID {
		t.Fatalf("a new row was created: first=%d second=%d", first.ID, second.ID)
	}
	if second.Quantity != 7 || second.Location != "osaka" {
		t.Fatalf("row not updated: %+v", second)
	}

	if n := countRows(t, db, &model.Inventory{}, "product_id = ?", product.ID); n != 1 {
		t.Fatalf("inventory rows = %d, want 1", n)
	}

	loaded, err := inventories.FindByProductID(ctx, product.ID)
	if err != nil {
		t.Fatalf("FindByProductID failed: %v", err)
	}
	if loaded.Quantity != 7 {
		t.Fatalf("quantity = %d, want 7", loaded.Quantity)
	}
}

// SKUの一意制約違反は ErrConflict に正規化される。
func Test_Product_Create_DuplicateSKUConflict(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	products := infraRepo.NewProductGormRepository(db)

	sku := "E2E-DUP-" + uniqueSuffix()
	_, err := products.Create(ctx, model.Product{Name: "Widget A", SKU: sku, Price: 10})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err = products.Create(ctx, model.Product{Name: "Widget B", SKU: sku, Price: 20})
	if !errors.Is(err, repo.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}
