package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ShippingGormRepository struct {
	db *gorm.DB
}

// DI
func NewShippingGormRepository(db *gorm.DB) *ShippingGormRepository {
	return &ShippingGormRepository{db: db}
}

func (r *ShippingGormRepository) Create(ctx context.Context, s model.Shipping) (model.Shipping, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Shipping{}, translate(err)
	}
	return s, nil
}

func (r *ShippingGormRepository) FindByID(ctx context.Context, id int64) (model.Shipping, error) {
	var s model.Shipping
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return model.Shipping{}, translate(err)
	}
	return s, nil
}

func (r *ShippingGormRepository) List(ctx context.Context) ([]model.Shipping, error) {
	var shippings []model.Shipping
	if err := r.db.WithContext(ctx).Order("id asc").Find(&shippings).Error; err != nil {
		return []model.Shipping{}, err
	}
	return shippings, nil
}

func (r *ShippingGormRepository) Update(ctx context.Context, s model.Shipping) error {
	res := r.db.WithContext(ctx).Model(&model.Shipping{}).Where("id = ?", s.ID).Updates(map[string]interface{}{
		"carrier":                 s.Carrier,
		"tracking_number":         s.TrackingNumber,
		"status":                  s.Status,
		"shipped_date":            s.ShippedDate,
		"estimated_delivery_date": s.EstimatedDeliveryDate,
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ShippingGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Shipping{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
