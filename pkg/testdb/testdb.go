// Package testdb opens an isolated sqlite database per test through the same
// OpenDB path the server uses and seeds a small two-country catalog.
package testdb

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Keshavsaini22/slooze-assignment/configs"
	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/policy"
)

// Open returns a migrated file-backed database with the production pool and
// locking options, so goroutines in a test really overlap.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := configs.OpenDB(&configs.Config{
		DBDriver: "sqlite",
		DBSource: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	db.Logger = logger.Discard

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, configs.SetupDatabase(db))
	return db
}

type Fixture struct {
	DB *gorm.DB

	India     *entity.Restaurant
	Trattoria *entity.Restaurant // ร้านที่สองในอินเดีย
	America   *entity.Restaurant

	// India
	ButterChicken *entity.MenuItem
	Naan          *entity.MenuItem
	Margherita    *entity.MenuItem // Trattoria
	// America
	Burger *entity.MenuItem
	Fries  *entity.MenuItem

	Admin     policy.Actor
	ManagerIN policy.Actor
	ManagerUS policy.Actor
	MemberIN  policy.Actor
	MemberIN2 policy.Actor
	MemberUS  policy.Actor
}

// Seed opens a database and fills it with two restaurants in India and one
// in America.
func Seed(t *testing.T) *Fixture {
	t.Helper()
	db := Open(t)
	f := &Fixture{DB: db}

	f.India = restaurant(t, db, "Spice Route", "India")
	f.Trattoria = restaurant(t, db, "Trattoria Roma", "India")
	f.America = restaurant(t, db, "Liberty Diner", "America")
	f.ButterChicken = menuItem(t, db, f.India, "Butter Chicken", "12.50")
	f.Naan = menuItem(t, db, f.India, "Naan", "2.00")
	f.Margherita = menuItem(t, db, f.Trattoria, "Margherita", "10.00")
	f.Burger = menuItem(t, db, f.America, "Cheeseburger", "9.99")
	f.Fries = menuItem(t, db, f.America, "Fries", "3.50")

	f.Admin = user(t, db, "admin@test.io", entity.RoleAdmin, "")
	f.ManagerIN = user(t, db, "manager.in@test.io", entity.RoleManager, "India")
	f.ManagerUS = user(t, db, "manager.us@test.io", entity.RoleManager, "America")
	f.MemberIN = user(t, db, "member.in@test.io", entity.RoleMember, "India")
	f.MemberIN2 = user(t, db, "member2.in@test.io", entity.RoleMember, "India")
	f.MemberUS = user(t, db, "member.us@test.io", entity.RoleMember, "America")
	return f
}

func restaurant(t *testing.T, db *gorm.DB, name, country string) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{Name: name, Country: country}
	require.NoError(t, db.Create(r).Error)
	return r
}

func menuItem(t *testing.T, db *gorm.DB, r *entity.Restaurant, name, price string) *entity.MenuItem {
	t.Helper()
	m := &entity.MenuItem{
		Name:         name,
		Price:        decimal.RequireFromString(price),
		DietaryType:  entity.DietaryVeg,
		RestaurantID: r.ID,
	}
	require.NoError(t, db.Create(m).Error)
	m.Restaurant = *r
	return m
}

func user(t *testing.T, db *gorm.DB, email string, role entity.Role, country string) policy.Actor {
	t.Helper()
	u := &entity.User{Email: email, Name: email, Role: role, Country: country}
	require.NoError(t, db.Create(u).Error)
	a, err := policy.NewActor(u.ID, role, country)
	require.NoError(t, err)
	return a
}
