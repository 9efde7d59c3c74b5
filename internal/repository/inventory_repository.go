package repository

import (
	"context"

	"app/internal/domain/model"
)

// 在庫の永続化。Upsert は「作成したか更新したか」を返す。
type InventoryRepository interface {
	Upsert(ctx context.Context, productID int64, quantity int64, location string) (model.Inventory, bool, error)
	FindByID(ctx context.Context, id int64) (model.Inventory, error)
	FindByProductID(ctx context.Context, productID int64) (model.Inventory, error)
	Update(ctx context.Context, inv model.Inventory) error
	Delete(ctx context.Context, id int64) error
}
