package model

// 単位の種類（重さ・容量など）
type UnitType struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	TypeName string `gorm:"type:varchar(50);uniqueIndex;not null" json:"type_name"`

	Units []Unit `gorm:"foreignKey:UnitTypeID;constraint:OnDelete:CASCADE" json:"units,omitempty"`
}
