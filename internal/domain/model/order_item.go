package model

// 注文明細。商品が消えても会計記録として行は残る（product_id が NULL になる）。
type OrderItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   *int64  `gorm:"index" json:"order_id"`
	ProductID *int64  `gorm:"index" json:"product_id"`
	Quantity  int64   `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
