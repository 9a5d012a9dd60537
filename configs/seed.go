package configs

import (
	"log/slog"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const demoPassword = "password123"

type seedMenu struct {
	name  string
	price string
	diet  entity.DietaryType
}

type seedRestaurant struct {
	name, address, cuisine, country string
	menu                            []seedMenu
}

var demoUsers = []entity.User{
	{Email: "nick.fury@slooze.xyz", Name: "Nick Fury", Role: entity.RoleAdmin, Country: "America"},
	{Email: "captain.marvel@slooze.xyz", Name: "Captain Marvel", Role: entity.RoleManager, Country: "India"},
	{Email: "captain.america@slooze.xyz", Name: "Captain America", Role: entity.RoleManager, Country: "America"},
	{Email: "thanos@slooze.xyz", Name: "Thanos", Role: entity.RoleMember, Country: "India"},
	{Email: "thor@slooze.xyz", Name: "Thor", Role: entity.RoleMember, Country: "India"},
	{Email: "travis@slooze.xyz", Name: "Travis", Role: entity.RoleMember, Country: "America"},
}

var demoRestaurants = []seedRestaurant{
	{"Spice Route", "12 MG Road, Bengaluru", "Indian", "India", []seedMenu{
		{"Butter Chicken", "13.99", entity.DietaryNonVeg},
		{"Paneer Tikka", "11.99", entity.DietaryVeg},
		{"Naan", "2.99", entity.DietaryVeg},
	}},
	{"Trattoria Roma", "44 Linking Road, Mumbai", "Italian", "India", []seedMenu{
		{"Margherita Pizza", "10.99", entity.DietaryVeg},
		{"Tiramisu", "6.99", entity.DietaryEgg},
	}},
	{"Liberty Diner", "5th Avenue, New York", "American", "America", []seedMenu{
		{"Cheeseburger", "9.99", entity.DietaryNonVeg},
		{"Fries", "3.99", entity.DietaryVeg},
		{"Apple Pie", "4.99", entity.DietaryEgg},
	}},
	{"Casa Azul", "Mission St, San Francisco", "Mexican", "America", []seedMenu{
		{"Burrito", "9.99", entity.DietaryNonVeg},
		{"Guacamole", "5.99", entity.DietaryVeg},
	}},
}

// SeedDemo สร้าง user/ร้าน/เมนูตัวอย่าง (เรียกซ้ำได้)
func SeedDemo(db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, u := range demoUsers {
			u.Password = string(hash)
			if err := tx.Where(entity.User{Email: u.Email}).FirstOrCreate(&u).Error; err != nil {
				return err
			}
		}

		for _, sr := range demoRestaurants {
			r := entity.Restaurant{Name: sr.name, Address: sr.address, Cuisine: sr.cuisine, Country: sr.country}
			if err := tx.Where(entity.Restaurant{Name: sr.name, Country: sr.country}).FirstOrCreate(&r).Error; err != nil {
				return err
			}
			for _, sm := range sr.menu {
				m := entity.MenuItem{
					Name:         sm.name,
					Price:        decimal.RequireFromString(sm.price),
					DietaryType:  sm.diet,
					RestaurantID: r.ID,
				}
				if err := tx.Where(entity.MenuItem{Name: sm.name, RestaurantID: r.ID}).FirstOrCreate(&m).Error; err != nil {
					return err
				}
			}
		}
		slog.Info("demo data seeded", slog.Int("users", len(demoUsers)), slog.Int("restaurants", len(demoRestaurants)))
		return nil
	})
}
