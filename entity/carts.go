package entity

type Cart struct {
	Model
	UserID string `gorm:"size:36;uniqueIndex;not null" json:"userId"`
	// ว่างเมื่อไม่มีรายการในตะกร้า
	RestaurantID string `gorm:"size:36" json:"restaurantId"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
