package model

import "time"

// 在庫。商品×ロケーションごとに1行をアップサートで維持する。
type Inventory struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID   int64     `gorm:"not null;index" json:"product_id"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	Location    string    `gorm:"type:varchar(100)" json:"location"`
	LastUpdated time.Time `gorm:"not null" json:"last_updated"`
}

func (Inventory) TableName() string {
	return "inventory"
}
