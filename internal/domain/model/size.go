package model

// サイズ（S/M/L など）
type Size struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	SizeName string `gorm:"type:varchar(10);uniqueIndex;not null" json:"size_name"`

	// サイズ削除でバリアントは残す（size_id を NULL に）
	Variants []ProductVariant `gorm:"foreignKey:SizeID;constraint:OnDelete:SET NULL" json:"variants,omitempty"`
}
