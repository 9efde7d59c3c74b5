package model

// 商品画像
type ProductImage struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64  `gorm:"not null;index" json:"product_id"`
	ImageURL  string `gorm:"type:varchar(255);not null" json:"image_url"`
	AltText   string `gorm:"type:varchar(255)" json:"alt_text"`
}
