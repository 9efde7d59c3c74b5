package model

import "time"

// 商品バリアント（色×サイズ）。SKU は商品と同じく全体で一意。
type ProductVariant struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64   `gorm:"not null;index" json:"product_id"`
	SizeID    *int64  `gorm:"index" json:"size_id"`
	Color     string  `gorm:"type:varchar(50)" json:"color"`
	SKU       string  `gorm:"column:sku;type:varchar(50);uniqueIndex;not null" json:"sku"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock     int64   `gorm:"not null;default:0" json:"stock"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Size *Size `gorm:"foreignKey:SizeID" json:"size,omitempty"`
}
