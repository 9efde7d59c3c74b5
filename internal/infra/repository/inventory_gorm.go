package repository

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

// DI
func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// 商品の在庫行が無ければ作成、あれば数量とロケーションを更新。
// 行ロック付きトランザクションで同時更新の取りこぼしを防ぐ。
func (r *InventoryGormRepository) Upsert(ctx context.Context, productID int64, quantity int64, location string) (model.Inventory, bool, error) {
	var inv model.Inventory
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("product_id = ?", productID).
			First(&inv).Error

		now := time.Now()

		if findErr == nil {
			inv.Quantity = quantity
			inv.Location = location
			inv.LastUpdated = now
			return tx.Model(&model.Inventory{}).Where("id = ?", inv.ID).Updates(map[string]interface{}{
				"quantity":     quantity,
				"location":     location,
				"last_updated": now,
			}).Error
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		inv = model.Inventory{
			ProductID:   productID,
			Quantity:    quantity,
			Location:    location,
			LastUpdated: now,
		}
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		created = true
		return nil
	})

	if err != nil {
		return model.Inventory{}, false, translate(err)
	}
	return inv, created, nil
}

func (r *InventoryGormRepository) FindByID(ctx context.Context, id int64) (model.Inventory, error) {
	var inv model.Inventory
	if err := r.db.WithContext(ctx).First(&inv, id).Error; err != nil {
		return model.Inventory{}, translate(err)
	}
	return inv, nil
}

func (r *InventoryGormRepository) FindByProductID(ctx context.Context, productID int64) (model.Inventory, error) {
	var inv model.Inventory
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&inv).Error
	if err != nil {
		return model.Inventory{}, translate(err)
	}
	return inv, nil
}

func (r *InventoryGormRepository) Update(ctx context.Context, inv model.Inventory) error {
	res := r.db.WithContext(ctx).Model(&model.Inventory{}).Where("id = ?", inv.ID).Updates(map[string]interface{}{
		"quantity":     inv.Quantity,
		"location":     inv.Location,
		"last_updated": time.Now(),
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *InventoryGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Inventory{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
