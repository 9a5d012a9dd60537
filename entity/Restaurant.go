package entity

type Restaurant struct {
	Model
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	Cuisine string `json:"cuisine"`
	Country string `gorm:"not null;index" json:"country"`

	Menus  []MenuItem `json:"-"`
	Orders []Order    `json:"-"`
}
