package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SitePropertyGormRepository struct {
	db *gorm.DB
}

// DI
func NewSitePropertyGormRepository(db *gorm.DB) *SitePropertyGormRepository {
	return &SitePropertyGormRepository{db: db}
}

func (r *SitePropertyGormRepository) List(ctx context.Context) ([]model.SiteProperty, error) {
	var props []model.SiteProperty
	if err := r.db.WithContext(ctx).Order("id asc").Find(&props).Error; err != nil {
		return []model.SiteProperty{}, err
	}
	return props, nil
}

func (r *SitePropertyGormRepository) FindByKey(ctx context.Context, key string) (model.SiteProperty, error) {
	var prop model.SiteProperty
	err := r.db.WithContext(ctx).Where("property_key = ?", key).First(&prop).Error
	if err != nil {
		return model.SiteProperty{}, translate(err)
	}
	return prop, nil
}

// key が既にあれば監査ログを書いてから更新、無ければ監査ログ無しで新規作成。
// 旧値の読み取りと更新を同一トランザクション＋行ロックで行う。
func (r *SitePropertyGormRepository) Set(ctx context.Context, key, value, description, changedBy string) (model.SiteProperty, bool, error) {
	var prop model.SiteProperty
	created := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("property_key = ?", key).
			First(&prop).Error

		if findErr == nil {
			// 更新前に旧値を監査ログへ残す
			log := model.AuditLog{
				PropertyKey: prop.PropertyKey,
				OldValue:    prop.PropertyValue,
				NewValue:    value,
				ChangedBy:   changedBy,
			}
			if err := tx.Create(&log).Error; err != nil {
				return err
			}

			res := tx.Model(&model.SiteProperty{}).Where("id = ?", prop.ID).Updates(map[string]interface{}{
				"property_value": value,
				"description":    description,
			})
			if res.Error != nil {
				return res.Error
			}
			prop.PropertyValue = value
			prop.Description = description
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		// 初回作成。旧値が無いので監査ログは書かない。
		prop = model.SiteProperty{
			PropertyKey:   key,
			PropertyValue: value,
			Description:   description,
		}
		if err := tx.Create(&prop).Error; err != nil {
			return err
		}
		created = true
		return nil
	})

	if err != nil {
		return model.SiteProperty{}, false, translate(err)
	}
	return prop, created, nil
}

type AuditLogGormRepository struct {
	db *gorm.DB
}

// DI
func NewAuditLogGormRepository(db *gorm.DB) *AuditLogGormRepository {
	return &AuditLogGormRepository{db: db}
}

func (r *AuditLogGormRepository) List(ctx context.Context) ([]model.AuditLog, error) {
	var logs []model.AuditLog
	if err := r.db.WithContext(ctx).Order("id asc").Find(&logs).Error; err != nil {
		return []model.AuditLog{}, err
	}
	return logs, nil
}

func (r *AuditLogGormRepository) ListByPropertyKey(ctx context.Context, key string) ([]model.AuditLog, error) {
	var logs []model.AuditLog
	err := r.db.WithContext(ctx).
		Where("property_key = ?", key).
		Order("id asc").
		Find(&logs).Error
	if err != nil {
		return []model.AuditLog{}, err
	}
	return logs, nil
}

func (r *AuditLogGormRepository) ListByChangedBy(ctx context.Context, changedBy string) ([]model.AuditLog, error) {
	var logs []model.AuditLog
	err := r.db.WithContext(ctx).
		Where("changed_by = ?", changedBy).
		Order("id asc").
		Find(&logs).Error
	if err != nil {
		return []model.AuditLog{}, err
	}
	return logs, nil
}
