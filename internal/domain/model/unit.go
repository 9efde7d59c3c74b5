package model

// 計量単位。conversion_to_base で基準単位へ換算する。
type Unit struct {
	ID               int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UnitTypeID       int64   `gorm:"not null;index" json:"unit_type_id"`
	UnitName         string  `gorm:"type:varchar(50);not null" json:"unit_name"`
	Abbreviation     string  `gorm:"type:varchar(10);not null" json:"abbreviation"`
	ConversionToBase float64 `gorm:"type:decimal(10,4);not null" json:"conversion_to_base"`

	// 単位削除で商品への割当は残す（unit_id を NULL に）
	ProductUnits []ProductUnit `gorm:"foreignKey:UnitID;constraint:OnDelete:SET NULL" json:"-"`
}
