package entity

import "github.com/shopspring/decimal"

type DietaryType string

const (
	DietaryVeg    DietaryType = "VEG"
	DietaryNonVeg DietaryType = "NON_VEG"
	DietaryEgg    DietaryType = "EGG"
)

type MenuItem struct {
	Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	DietaryType DietaryType     `gorm:"size:20" json:"dietaryType"`

	RestaurantID string     `gorm:"size:36;not null;index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"` // preload เมื่อต้องการ country
}
