package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type SizeGormRepository struct {
	db *gorm.DB
}

// DI
func NewSizeGormRepository(db *gorm.DB) *SizeGormRepository {
	return &SizeGormRepository{db: db}
}

func (r *SizeGormRepository) Create(ctx context.Context, s model.Size) (model.Size, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return model.Size{}, translate(err)
	}
	return s, nil
}

func (r *SizeGormRepository) FindByID(ctx context.Context, id int64) (model.Size, error) {
	var s model.Size
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return model.Size{}, translate(err)
	}
	return s, nil
}

func (r *SizeGormRepository) List(ctx context.Context) ([]model.Size, error) {
	var sizes []model.Size
	if err := r.db.WithContext(ctx).Order("id asc").Find(&sizes).Error; err != nil {
		return []model.Size{}, err
	}
	return sizes, nil
}

func (r *SizeGormRepository) Update(ctx context.Context, s model.Size) error {
	res := r.db.WithContext(ctx).Model(&model.Size{}).Where("id = ?", s.ID).
		Update("size_name", s.SizeName)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// サイズ削除。バリアントのsize_idはFKのSET NULLで外れる。
func (r *SizeGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Size{}, id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
