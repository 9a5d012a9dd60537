package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/pkg/apperr"
	"github.com/Keshavsaini22/slooze-assignment/policy"
	"github.com/Keshavsaini22/slooze-assignment/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartConflictPolicy decides what happens when an item from another
// restaurant is added to a non-empty cart.
type CartConflictPolicy string

const (
	// CartReplace drops the old lines and keeps only the new item.
	CartReplace CartConflictPolicy = "replace"
	// CartConfirm rejects with Conflict unless the caller sets Replace.
	CartConfirm CartConflictPolicy = "confirm"
)

var ErrCartConflict = apperr.Conflict("cart holds items from another restaurant")

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	Catalog  Catalog
	Policy   CartConflictPolicy
	Log      *slog.Logger
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, catalog Catalog, p CartConflictPolicy, log *slog.Logger) *CartService {
	if p != CartConfirm {
		p = CartReplace
	}
	if log == nil {
		log = slog.Default()
	}
	return &CartService{DB: db, CartRepo: cr, Catalog: catalog, Policy: p, Log: log}
}

type AddToCartIn struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
	// ยืนยันการแทนที่ตะกร้าเมื่อ policy = confirm
	Replace bool `json:"replace"`
}

type AddToCartOut struct {
	Item     entity.CartItem `json:"item"`
	Replaced bool            `json:"replaced"`
}

type CartLine struct {
	MenuItemID        string             `json:"menuItemId"`
	Name              string             `json:"name"`
	DietaryType       entity.DietaryType `json:"dietaryType,omitempty"`
	RestaurantID      string             `json:"restaurantId"`
	RestaurantName    string             `json:"restaurantName"`
	RestaurantCountry string             `json:"restaurantCountry"`
	Quantity          int                `json:"quantity"`
	UnitPrice         decimal.Decimal    `json:"price"`
	UnitPriceAtAdd    decimal.Decimal    `json:"priceAtAdd"`
	LineTotal         decimal.Decimal    `json:"lineTotal"`
}

type CartView struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurantId"`
	Items        []CartLine      `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// Get คืนตะกร้าพร้อมยอดรวมจากราคาปัจจุบันใน catalog (ไม่ freeze)
func (s *CartService) Get(ctx context.Context, actor policy.Actor) (*CartView, error) {
	c, err := s.CartRepo.GetOrCreate(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		ids = append(ids, it.MenuItemID)
	}
	menus, err := s.Catalog.MenuItemsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.MenuItem, len(menus))
	for _, m := range menus {
		byID[m.ID] = m
	}

	view := &CartView{ID: c.ID, RestaurantID: c.RestaurantID, Items: make([]CartLine, 0, len(c.Items)), TotalAmount: decimal.Zero}
	for _, it := range c.Items {
		line := CartLine{
			MenuItemID:     it.MenuItemID,
			RestaurantID:   it.RestaurantID,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPriceAtAdd,
			UnitPriceAtAdd: it.UnitPriceAtAdd,
		}
		// เมนูถูกลบออกจาก catalog -> ใช้ราคาตอนเพิ่ม
		if m, ok := byID[it.MenuItemID]; ok {
			line.Name = m.Name
			line.DietaryType = m.DietaryType
			line.UnitPrice = m.Price
			line.RestaurantName = m.Restaurant.Name
			line.RestaurantCountry = m.Restaurant.Country
		}
		line.LineTotal = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		view.TotalAmount = view.TotalAmount.Add(line.LineTotal)
		view.Items = append(view.Items, line)
	}
	return view, nil
}

func (s *CartService) AddItem(ctx context.Context, actor policy.Actor, in *AddToCartIn) (*AddToCartOut, error) {
	if in.Quantity < 1 {
		return nil, apperr.BadRequest("quantity must be at least 1")
	}

	m, err := s.Catalog.MenuItemByID(ctx, in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if err := policy.ScopeFor(actor).Require(m.Restaurant.Country); err != nil {
		return nil, apperr.Forbidden("you can only order from restaurants in your country (%s)", actor.Country)
	}

	var out AddToCartOut
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cr := s.CartRepo.WithTx(tx)
		c, err := cr.GetOrCreate(ctx, actor.ID)
		if err != nil {
			return err
		}
		if err := cr.Touch(ctx, c.ID); err != nil {
			return err
		}

		// ตะกร้ามีของจากร้านอื่น -> แทนที่ทั้งตะกร้า หรือขอให้ยืนยันก่อน
		if len(c.Items) > 0 && c.RestaurantID != m.RestaurantID {
			if s.Policy == CartConfirm && !in.Replace {
				return ErrCartConflict
			}
			if err := cr.DeleteItems(ctx, c.ID); err != nil {
				return err
			}
			out.Replaced = true
		}
		if c.RestaurantID != m.RestaurantID {
			if err := cr.SetRestaurant(ctx, c.ID, m.RestaurantID); err != nil {
				return err
			}
		}

		line := &entity.CartItem{
			CartID:         c.ID,
			MenuItemID:     m.ID,
			RestaurantID:   m.RestaurantID,
			Quantity:       in.Quantity,
			UnitPriceAtAdd: m.Price,
		}
		if err := cr.UpsertItem(ctx, line); err != nil {
			return err
		}
		saved, err := cr.GetItem(ctx, c.ID, m.ID)
		if err != nil {
			return err
		}
		out.Item = *saved
		return nil
	})
	if err != nil {
		return nil, err
	}

	if out.Replaced {
		s.Log.InfoContext(ctx, "cart replaced by item from another restaurant",
			slog.String("user_id", actor.ID), slog.String("restaurant_id", m.RestaurantID))
	}
	return &out, nil
}

// UpdateQty qty <= 0 เท่ากับลบรายการ
func (s *CartService) UpdateQty(ctx context.Context, actor policy.Actor, menuItemID string, qty int) error {
	if qty <= 0 {
		return s.RemoveItem(ctx, actor, menuItemID)
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cr := s.CartRepo.WithTx(tx)
		c, err := cr.FindByUser(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return apperr.NotFound("menu item %s is not in the cart", menuItemID)
			}
			return err
		}
		if err := cr.Touch(ctx, c.ID); err != nil {
			return err
		}
		n, err := cr.UpdateQty(ctx, c.ID, menuItemID, qty)
		if err != nil {
			return err
		}
		if n == 0 {
			return apperr.NotFound("menu item %s is not in the cart", menuItemID)
		}
		return nil
	})
}

// RemoveItem ไม่มีรายการ = no-op
func (s *CartService) RemoveItem(ctx context.Context, actor policy.Actor, menuItemID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cr := s.CartRepo.WithTx(tx)
		c, err := cr.FindByUser(ctx, actor.ID)
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := cr.Touch(ctx, c.ID); err != nil {
			return err
		}
		if _, err := cr.RemoveItem(ctx, c.ID, menuItemID); err != nil {
			return err
		}
		return cr.ResetRestaurantIfEmpty(ctx, c.ID)
	})
}

// ConsumeLines หักเฉพาะจำนวนที่ถูกสั่งไปแล้ว ของที่เพิ่มเข้ามาทีหลังยังอยู่ในตะกร้า
func (s *CartService) ConsumeLines(ctx context.Context, actor policy.Actor, lines []CartLine) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cr := s.CartRepo.WithTx(tx)
		c, err := cr.FindByUser(ctx, actor.ID)
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := cr.Touch(ctx, c.ID); err != nil {
			return err
		}
		for _, l := range lines {
			if err := cr.ConsumeItem(ctx, c.ID, l.MenuItemID, l.Quantity); err != nil {
				return err
			}
		}
		return cr.ResetRestaurantIfEmpty(ctx, c.ID)
	})
}

func (s *CartService) Clear(ctx context.Context, actor policy.Actor) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cr := s.CartRepo.WithTx(tx)
		c, err := cr.FindByUser(ctx, actor.ID)
		if errors.Is(err, apperr.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := cr.DeleteItems(ctx, c.ID); err != nil {
			return err
		}
		return cr.SetRestaurant(ctx, c.ID, "")
	})
}
