package model

import "time"

// サイト設定の変更履歴。追記専用で、更新・削除はしない。
type AuditLog struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyKey string    `gorm:"type:varchar(50);index" json:"property_key"`
	OldValue    string    `gorm:"type:text" json:"old_value"`
	NewValue    string    `gorm:"type:text" json:"new_value"`
	ChangedBy   string    `gorm:"type:varchar(50);index" json:"changed_by"`
	ChangedAt   time.Time `gorm:"not null;autoCreateTime" json:"changed_at"`
}

func (AuditLog) TableName() string {
	return "audit_log"
}
