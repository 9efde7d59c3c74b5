package model

import "time"

type Product struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  *int64  `gorm:"index" json:"category_id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	SKU         string  `gorm:"column:sku;type:varchar(50);uniqueIndex;not null" json:"sku"`
	Stock       int64   `gorm:"not null;default:0" json:"stock"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	// 商品削除時：画像・在庫・レビュー・バリアント・カート明細・単位割当は道連れ。
	// 注文明細だけは会計記録として残す（product_id を NULL に）。
	Images       []ProductImage   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Inventory    []Inventory      `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"inventory,omitempty"`
	Reviews      []Review         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	Variants     []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CartItems    []CartItem       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
	ProductUnits []ProductUnit    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product_units,omitempty"`
	OrderItems   []OrderItem      `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"-"`
}
