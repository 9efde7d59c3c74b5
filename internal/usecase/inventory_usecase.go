package usecase

import (
	"context"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type InventoryUsecase struct {
	inventoryRepo repo.InventoryRepository
	productRepo   repo.ProductRepository
}

// DI
func NewInventoryUsecase(inventoryRepo repo.InventoryRepository, productRepo repo.ProductRepository) *InventoryUsecase {
	return &InventoryUsecase{inventoryRepo: inventoryRepo, productRepo: productRepo}
}

type UpsertInventoryInput struct {
	Quantity *int64
	Location string
}

type UpdateInventoryInput struct {
	Quantity *int64
	Location *string
}

// 既存在庫があれば上書き、無ければ新規作成。2番目の戻り値は作成したかどうか
// （ハンドラが 201/200 を出し分けるのに使う）。
func (u *InventoryUsecase) UpsertInventory(ctx context.Context, productID int64, in UpsertInventoryInput) (model.Inventory, bool, error) {
	if in.Quantity == nil || *in.Quantity < 0 {
		return model.Inventory{}, false, NewHTTPError(http.StatusBadRequest, "quantity must be >= 0")
	}

	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		return model.Inventory{}, false, fromRepoError(err, "product")
	}

	inv, created, err := u.inventoryRepo.Upsert(ctx, productID, *in.Quantity, in.Location)
	if err != nil {
		return model.Inventory{}, false, fromRepoError(err, "inventory")
	}
	return inv, created, nil
}

func (u *InventoryUsecase) GetInventoryByProduct(ctx context.Context, productID int64) (model.Inventory, error) {
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		return model.Inventory{}, fromRepoError(err, "product")
	}
	inv, err := u.inventoryRepo.FindByProductID(ctx, productID)
	if err != nil {
		return model.Inventory{}, fromRepoError(err, "inventory")
	}
	return inv, nil
}

func (u *InventoryUsecase) UpdateInventory(ctx context.Context, id int64, in UpdateInventoryInput) (model.Inventory, error) {
	inv, err := u.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return model.Inventory{}, fromRepoError(err, "inventory")
	}

	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return model.Inventory{}, NewHTTPError(http.StatusBadRequest, "quantity must be >= 0")
		}
		inv.Quantity = *in.Quantity
	}
	if in.Location != nil {
		inv.Location = *in.Location
	}

	if err := u.inventoryRepo.Update(ctx, inv); err != nil {
		return model.Inventory{}, fromRepoError(err, "inventory")
	}
	return inv, nil
}

func (u *InventoryUsecase) DeleteInventory(ctx context.Context, id int64) error {
	if err := u.inventoryRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "inventory")
	}
	return nil
}
