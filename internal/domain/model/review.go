package model

import "time"

// 商品レビュー。rating は 1〜5。
type Review struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  int64  `gorm:"not null;index" json:"product_id"`
	UserID     int64  `gorm:"not null;index" json:"user_id"`
	Rating     int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	ReviewText string `gorm:"type:text" json:"review_text"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
