package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type UnitTypeGormRepository struct {
	db *gorm.DB
}

// DI
func NewUnitTypeGormRepository(db *gorm.DB) *UnitTypeGormRepository {
	return &UnitTypeGormRepository{db: db}
}

func (r *UnitTypeGormRepository) Create(ctx context.Context, t model.UnitType) (model.UnitType, error) {
	if err := r.db.WithContext(ctx).Create(&t).Error; err != nil {
		return model.UnitType{}, translate(err)
	}
	return t, nil
}

func (r *UnitTypeGormRepository) FindByID(ctx context.Context, id int64) (model.UnitType, error) {
	var t model.UnitType
	if err := r.db.WithContext(ctx).Preload("Units").First(&t, id).Error; err != nil {
		return model.UnitType{}, translate(err)
	}
	return t, nil
}

func (r *UnitTypeGormRepository) List(ctx context.Context) ([]model.UnitType, error) {
	var types []model.UnitType
	if err := r.db.WithContext(ctx).Order("id asc").Find(&types).Error; err != nil {
		return []model.UnitType{}, err
	}
	return types, nil
}

func (r *UnitTypeGormRepository) Update(ctx context.Context, t model.UnitType) error {
	res := r.db.WithContext(ctx).Model(&model.UnitType{}).Where("id = ?", t.ID).
		Update("type_name", t.TypeName)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 単位種別削除。所属する単位はCASCADEで消える。
func (r *UnitTypeGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.UnitType{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type UnitGormRepository struct {
	db *gorm.DB
}

// DI
func NewUnitGormRepository(db *gorm.DB) *UnitGormRepository {
	return &UnitGormRepository{db: db}
}

func (r *UnitGormRepository) Create(ctx context.Context, u model.Unit) (model.Unit, error) {
	if err := r.db.WithContext(ctx).Create(&u).Error; err != nil {
		return model.Unit{}, translate(err)
	}
	return u, nil
}

func (r *UnitGormRepository) FindByID(ctx context.Context, id int64) (model.Unit, error) {
	var u model.Unit
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return model.Unit{}, translate(err)
	}
	return u, nil
}

func (r *UnitGormRepository) List(ctx context.Context) ([]model.Unit, error) {
	var units []model.Unit
	if err := r.db.WithContext(ctx).Order("id asc").Find(&units).Error; err != nil {
		return []model.Unit{}, err
	}
	return units, nil
}

func (r *UnitGormRepository) Update(ctx context.Context, u model.Unit) error {
	res := r.db.WithContext(ctx).Model(&model.Unit{}).Where("id = ?", u.ID).Updates(map[string]interface{}{
		"unit_type_id":       u.UnitTypeID,
		"unit_name":          u.UnitName,
		"abbreviation":       u.Abbreviation,
		"conversion_to_base": u.ConversionToBase,
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 単位削除。商品への割当はSET NULLで残る。
func (r *UnitGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Unit{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

type ProductUnitGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductUnitGormRepository(db *gorm.DB) *ProductUnitGormRepository {
	return &ProductUnitGormRepository{db: db}
}

func (r *ProductUnitGormRepository) Create(ctx context.Context, pu model.ProductUnit) (model.ProductUnit, error) {
	if err := r.db.WithContext(ctx).Create(&pu).Error; err != nil {
		return model.ProductUnit{}, translate(err)
	}
	return pu, nil
}

func (r *ProductUnitGormRepository) FindByID(ctx context.Context, id int64) (model.ProductUnit, error) {
	var pu model.ProductUnit
	if err := r.db.WithContext(ctx).Preload("Unit").First(&pu, id).Error; err != nil {
		return model.ProductUnit{}, translate(err)
	}
	return pu, nil
}

func (r *ProductUnitGormRepository) List(ctx context.Context) ([]model.ProductUnit, error) {
	var productUnits []model.ProductUnit
	if err := r.db.WithContext(ctx).Order("id asc").Find(&productUnits).Error; err != nil {
		return []model.ProductUnit{}, err
	}
	return productUnits, nil
}

func (r *ProductUnitGormRepository) Update(ctx context.Context, pu model.ProductUnit) error {
	res := r.db.WithContext(ctx).Model(&model.ProductUnit{}).Where("id = ?", pu.ID).Updates(map[string]interface{}{
		"product_id": pu.ProductID,
		"unit_id":    pu.UnitID,
		"quantity":   pu.Quantity,
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductUnitGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.ProductUnit{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
