package services

import (
	"context"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/repository"
)

// Catalog is the read-only menu/restaurant lookup the order core depends on.
// MenuItem values carry their Restaurant so callers can read its country.
type Catalog interface {
	MenuItemByID(ctx context.Context, id string) (*entity.MenuItem, error)
	MenuItemsByIDs(ctx context.Context, ids []string) ([]entity.MenuItem, error)
	RestaurantByID(ctx context.Context, id string) (*entity.Restaurant, error)
}

type repoCatalog struct {
	menus *repository.MenuRepository
	rests *repository.RestaurantRepository
}

func NewCatalog(menus *repository.MenuRepository, rests *repository.RestaurantRepository) Catalog {
	return &repoCatalog{menus: menus, rests: rests}
}

func (c *repoCatalog) MenuItemByID(ctx context.Context, id string) (*entity.MenuItem, error) {
	return c.menus.GetByID(ctx, id)
}

func (c *repoCatalog) MenuItemsByIDs(ctx context.Context, ids []string) ([]entity.MenuItem, error) {
	return c.menus.GetByIDs(ctx, ids)
}

func (c *repoCatalog) RestaurantByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	return c.rests.GetByID(ctx, id)
}
