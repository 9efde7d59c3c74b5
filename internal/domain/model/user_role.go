package model

// user_roles 中間テーブル。割当/解除はこの構造体を直接操作する。
// テーブル自体は User/Role の many2many から作られる。
type UserRole struct {
	UserID int64 `gorm:"primaryKey" json:"user_id"`
	RoleID int64 `gorm:"primaryKey" json:"role_id"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
