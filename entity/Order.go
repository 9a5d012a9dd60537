package entity

import "github.com/shopspring/decimal"

type Order struct {
	Model
	UserID       string `gorm:"size:36;not null;index" json:"userId"`
	RestaurantID string `gorm:"size:36;not null;index" json:"restaurantId"`
	// snapshot ประเทศของร้าน ณ ตอนสร้าง ใช้ตรวจ scope
	RestaurantCountry string `gorm:"not null;index" json:"restaurantCountry"`

	// คำนวณครั้งเดียวตอนสร้าง จาก OrderItems
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"totalAmount"`
	Status      OrderStatus     `gorm:"size:20;not null;index" json:"status"`
	Address     string          `json:"address,omitempty"`
	Version     int             `gorm:"not null" json:"version"`

	Items   []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Payment *Payment    `json:"payment,omitempty"`
}
