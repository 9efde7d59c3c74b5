package model

// 権限ロール
type Role struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName string `gorm:"type:varchar(255);uniqueIndex;not null" json:"role_name"`

	Users []User `gorm:"many2many:user_roles;constraint:OnDelete:CASCADE" json:"users,omitempty"`
}
