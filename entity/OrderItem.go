package entity

import "github.com/shopspring/decimal"

type OrderItem struct {
	Model
	OrderID    string          `gorm:"size:36;not null;index" json:"orderId"`
	MenuItemID string          `gorm:"size:36;not null" json:"menuItemId"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unitPrice"`
}

func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
