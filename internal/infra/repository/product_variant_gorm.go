package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductVariantGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductVariantGormRepository(db *gorm.DB) *ProductVariantGormRepository {
	return &ProductVariantGormRepository{db: db}
}

func (r *ProductVariantGormRepository) Create(ctx context.Context, v model.ProductVariant) (model.ProductVariant, error) {
	if err := r.db.WithContext(ctx).Create(&v).Error; err != nil {
		return model.ProductVariant{}, translate(err)
	}
	return v, nil
}

func (r *ProductVariantGormRepository) FindByID(ctx context.Context, id int64) (model.ProductVariant, error) {
	var v model.ProductVariant
	if err := r.db.WithContext(ctx).Preload("Size").First(&v, id).Error; err != nil {
		return model.ProductVariant{}, translate(err)
	}
	return v, nil
}

func (r *ProductVariantGormRepository) List(ctx context.Context) ([]model.ProductVariant, error) {
	var variants []model.ProductVariant
	if err := r.db.WithContext(ctx).Order("id asc").Find(&variants).Error; err != nil {
		return []model.ProductVariant{}, err
	}
	return variants, nil
}

func (r *ProductVariantGormRepository) Update(ctx context.Context, v model.ProductVariant) error {
	res := r.db.WithContext(ctx).Model(&model.ProductVariant{}).Where("id = ?", v.ID).Updates(map[string]interface{}{
		"product_id": v.ProductID,
		"size_id":    v.SizeID,
		"color":      v.Color,
		"sku":        v.SKU,
		"price":      v.Price,
		"stock":      v.Stock,
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductVariantGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductVariant{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
