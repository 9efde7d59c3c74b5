package model

import "time"

type ShippingStatus string

const (
	ShippingStatusPreparing ShippingStatus = "Preparing"
	ShippingStatusShipped   ShippingStatus = "Shipped"
	ShippingStatusInTransit ShippingStatus = "In Transit"
	ShippingStatusDelivered ShippingStatus = "Delivered"
)

type Shipping struct {
	ID                    int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID               int64          `gorm:"not null;index" json:"order_id"`
	Carrier               string         `gorm:"type:varchar(100);not null" json:"carrier"`
	TrackingNumber        string         `gorm:"type:varchar(100)" json:"tracking_number"`
	Status                ShippingStatus `gorm:"type:varchar(20);not null;default:'Preparing'" json:"status"`
	ShippedDate           *time.Time     `json:"shipped_date"`
	EstimatedDeliveryDate *time.Time     `json:"estimated_delivery_date"`
}
