package model

// 商品カテゴリ。parent_category_id で自己参照ツリーを作る。
// 親カテゴリ削除時は子の参照を NULL に戻す（子は消さない）。
type Category struct {
	ID               int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryName     string `gorm:"type:varchar(100);not null" json:"category_name"`
	ParentCategoryID *int64 `gorm:"index" json:"parent_category_id"`

	Parent   *Category  `gorm:"foreignKey:ParentCategoryID;constraint:OnDelete:SET NULL" json:"parent,omitempty"`
	Children []Category `gorm:"foreignKey:ParentCategoryID" json:"children,omitempty"`

	// カテゴリ削除で商品は残す（category_id を NULL に）
	Products []Product `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"products,omitempty"`
}
