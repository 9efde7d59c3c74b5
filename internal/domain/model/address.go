package model

import "time"

type AddressType string

const (
	AddressTypeBilling  AddressType = "Billing"
	AddressTypeShipping AddressType = "Shipping"
)

// 請求先/配送先住所
type Address struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      int64       `gorm:"not null;index" json:"user_id"`
	AddressType AddressType `gorm:"type:varchar(10);not null" json:"address_type"`
	Street      string      `gorm:"type:varchar(255);not null" json:"street"`
	City        string      `gorm:"type:varchar(255);not null" json:"city"`
	State       string      `gorm:"type:varchar(255)" json:"state"`
	PostalCode  string      `gorm:"type:varchar(20)" json:"postal_code"`
	Country     string      `gorm:"type:varchar(255);not null" json:"country"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
