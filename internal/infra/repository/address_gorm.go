package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type AddressGormRepository struct {
	db *gorm.DB
}

// DI
func NewAddressGormRepository(db *gorm.DB) *AddressGormRepository {
	return &AddressGormRepository{db: db}
}

func (r *AddressGormRepository) Create(ctx context.Context, a model.Address) (model.Address, error) {
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return model.Address{}, translate(err)
	}
	return a, nil
}

func (r *AddressGormRepository) FindByID(ctx context.Context, id int64) (model.Address, error) {
	var a model.Address
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return model.Address{}, translate(err)
	}
	return a, nil
}

func (r *AddressGormRepository) List(ctx context.Context) ([]model.Address, error) {
	var addresses []model.Address
	if err := r.db.WithContext(ctx).Order("id asc").Find(&addresses).Error; err != nil {
		return []model.Address{}, err
	}
	return addresses, nil
}

func (r *AddressGormRepository) Update(ctx context.Context, a model.Address) error {
	res := r.db.WithContext(ctx).Model(&model.Address{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
		"address_type": a.AddressType,
		"street":       a.Street,
		"city":         a.City,
		"state":        a.State,
		"postal_code":  a.PostalCode,
		"country":      a.Country,
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *AddressGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Address{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
