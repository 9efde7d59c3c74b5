package model

import "time"

// サイト設定の key/value。更新は監査ログとセットで行う。
type SiteProperty struct {
	ID            int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyKey   string `gorm:"type:varchar(50);uniqueIndex;not null" json:"property_key"`
	PropertyValue string `gorm:"type:text" json:"property_value"`
	Description   string `gorm:"type:varchar(255)" json:"description"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
