// services/menu_service.go
package services

import (
	"context"
	"log/slog"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/pkg/apperr"
	"github.com/Keshavsaini22/slooze-assignment/policy"
	"github.com/Keshavsaini22/slooze-assignment/repository"
	"github.com/shopspring/decimal"
)

type MenuService struct {
	Repo *repository.MenuRepository
	Log  *slog.Logger
}

func NewMenuService(repo *repository.MenuRepository, log *slog.Logger) *MenuService {
	if log == nil {
		log = slog.Default()
	}
	return &MenuService{Repo: repo, Log: log}
}

func (s *MenuService) Get(ctx context.Context, actor policy.Actor, id string) (*entity.MenuItem, error) {
	m, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.ScopeFor(actor).Permits(m.Restaurant.Country) {
		return nil, apperr.Forbidden("menu item %s is outside your scope", id)
	}
	return m, nil
}

// UpdatePrice เปลี่ยนราคาใน catalog; ตะกร้าเห็นราคาใหม่ทันที แต่ order เดิมไม่เปลี่ยน
func (s *MenuService) UpdatePrice(ctx context.Context, actor policy.Actor, id string, price decimal.Decimal) (*entity.MenuItem, error) {
	if err := policy.Authorize(actor, policy.ManageCatalog); err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return nil, apperr.BadRequest("price must be greater than zero")
	}
	price = price.Round(2)
	if err := s.Repo.UpdatePrice(ctx, id, price); err != nil {
		return nil, err
	}
	s.Log.InfoContext(ctx, "menu price updated",
		slog.String("menu_item_id", id), slog.String("actor_id", actor.ID), slog.String("price", price.StringFixed(2)))
	return s.Repo.GetByID(ctx, id)
}
