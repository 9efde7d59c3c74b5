package model

// 商品と単位の中間テーブル
type ProductUnit struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64   `gorm:"not null;index" json:"product_id"`
	UnitID    *int64  `gorm:"index" json:"unit_id"`
	Quantity  float64 `gorm:"type:decimal(10,2);not null" json:"quantity"`

	Unit *Unit `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}
