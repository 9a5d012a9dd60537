package entity

import "github.com/shopspring/decimal"

type CartItem struct {
	Model
	CartID     string `gorm:"size:36;not null;uniqueIndex:idx_cart_menu" json:"cartId"`
	MenuItemID string `gorm:"size:36;not null;uniqueIndex:idx_cart_menu" json:"menuItemId"`

	RestaurantID   string          `gorm:"size:36;not null" json:"restaurantId"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	UnitPriceAtAdd decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unitPriceAtAdd"`
}
