package services

import (
	"context"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/pkg/apperr"
	"github.com/Keshavsaini22/slooze-assignment/policy"
	"github.com/Keshavsaini22/slooze-assignment/repository"
)

type RestaurantService struct {
	Repo     *repository.RestaurantRepository
	MenuRepo *repository.MenuRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository, menuRepo *repository.MenuRepository) *RestaurantService {
	return &RestaurantService{Repo: repo, MenuRepo: menuRepo}
}

// List กรองตาม scope แบบเงียบ ๆ; country ใช้ได้เฉพาะ admin
func (s *RestaurantService) List(ctx context.Context, actor policy.Actor, country string) ([]entity.Restaurant, error) {
	scope := policy.ScopeFor(actor).Narrow(country)
	if scope.IsGlobal() {
		return s.Repo.List(ctx, "")
	}
	return s.Repo.List(ctx, scope.Country())
}

func (s *RestaurantService) Get(ctx context.Context, actor policy.Actor, id string) (*entity.Restaurant, error) {
	r, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.ScopeFor(actor).Permits(r.Country) {
		return nil, apperr.Forbidden("restaurant %s is outside your scope", id)
	}
	return r, nil
}

func (s *RestaurantService) Menu(ctx context.Context, actor policy.Actor, restaurantID string) ([]entity.MenuItem, error) {
	if _, err := s.Get(ctx, actor, restaurantID); err != nil {
		return nil, err
	}
	return s.MenuRepo.ListByRestaurant(ctx, restaurantID)
}
