package services

import (
	"context"
	"log/slog"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/pkg/apperr"
	"github.com/Keshavsaini22/slooze-assignment/policy"
	"github.com/Keshavsaini22/slooze-assignment/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	PaymentRepo *repository.PaymentRepository
	Carts       *CartService
	Catalog     Catalog
	Events      OrderEvents
	Log         *slog.Logger
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	paymentRepo *repository.PaymentRepository,
	carts *CartService,
	catalog Catalog,
	events OrderEvents,
	log *slog.Logger,
) *OrderService {
	if events == nil {
		events = noopEvents{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &OrderService{
		DB: db, Repo: repo, PaymentRepo: paymentRepo, Carts: carts,
		Catalog: catalog, Events: events, Log: log,
	}
}

// ----- DTOs from Controller -----
type OrderItemIn struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	Quantity   int    `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	RestaurantID string        `json:"restaurantId" binding:"required"`
	Items        []OrderItemIn `json:"items" binding:"required,min=1,dive"`
}

// ----- Create -----

// Create snapshots current catalog prices into a new PENDING order. It never
// reads or clears the cart.
func (s *OrderService) Create(ctx context.Context, actor policy.Actor, req *CreateOrderReq) (*entity.Order, error) {
	if err := policy.Authorize(actor, policy.CreateOrder); err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, apperr.BadRequest("items is required")
	}
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return nil, apperr.BadRequest("quantity for menu item %s must be at least 1", it.MenuItemID)
		}
	}

	rest, err := s.Catalog.RestaurantByID(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := policy.ScopeFor(actor).Require(rest.Country); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(req.Items))
	seen := make(map[string]bool, len(req.Items))
	for _, it := range req.Items {
		if !seen[it.MenuItemID] {
			seen[it.MenuItemID] = true
			ids = append(ids, it.MenuItemID)
		}
	}
	menus, err := s.Catalog.MenuItemsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.MenuItem, len(menus))
	for _, m := range menus {
		byID[m.ID] = m
	}

	total := decimal.Zero
	lines := make([]entity.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		m, ok := byID[it.MenuItemID]
		if !ok {
			return nil, apperr.NotFound("menu item %s not found", it.MenuItemID)
		}
		if m.RestaurantID != rest.ID {
			return nil, apperr.BadRequest("menu item %s is not served by restaurant %s", m.ID, rest.ID)
		}
		line := entity.OrderItem{MenuItemID: m.ID, Quantity: it.Quantity, UnitPrice: m.Price}
		total = total.Add(line.Subtotal())
		lines = append(lines, line)
	}

	order := &entity.Order{
		UserID:            actor.ID,
		RestaurantID:      rest.ID,
		RestaurantCountry: rest.Country,
		TotalAmount:       total,
		Status:            entity.OrderPending,
		Version:           1,
		Items:             lines,
	}
	if err := s.Repo.Create(ctx, order); err != nil {
		return nil, err
	}

	s.Log.InfoContext(ctx, "order created",
		slog.String("order_id", order.ID),
		slog.String("user_id", actor.ID),
		slog.String("total", order.TotalAmount.StringFixed(2)))
	s.Events.Publish(newOrderEvent(OrderCreated, order))
	return order, nil
}

// CreateFromCart turns the actor's cart into an order, then removes the
// ordered quantities from the cart. Lines added after the snapshot stay.
func (s *OrderService) CreateFromCart(ctx context.Context, actor policy.Actor) (*entity.Order, error) {
	cart, err := s.Carts.Get(ctx, actor)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 || cart.RestaurantID == "" {
		return nil, apperr.BadRequest("cart is empty")
	}

	req := &CreateOrderReq{RestaurantID: cart.RestaurantID, Items: make([]OrderItemIn, 0, len(cart.Items))}
	for _, it := range cart.Items {
		req.Items = append(req.Items, OrderItemIn{MenuItemID: it.MenuItemID, Quantity: it.Quantity})
	}
	order, err := s.Create(ctx, actor, req)
	if err != nil {
		return nil, err
	}

	// order สร้างแล้ว ถ้าล้างตะกร้าไม่สำเร็จให้ client ล้างเองได้
	if err := s.Carts.ConsumeLines(ctx, actor, cart.Items); err != nil {
		s.Log.WarnContext(ctx, "clear cart after checkout failed",
			slog.String("user_id", actor.ID), slog.Any("error", err))
	}
	return order, nil
}

// ----- List & Detail -----

// List applies the actor's scope as a silent filter. country only narrows
// an admin's view.
func (s *OrderService) List(ctx context.Context, actor policy.Actor, country string, status entity.OrderStatus) ([]entity.Order, error) {
	if status != "" && !status.IsValid() {
		return nil, apperr.BadRequest("unknown order status %q", status)
	}
	f := policy.OrderListFilter(actor, country)
	return s.Repo.List(ctx, repository.OrderQuery{OwnerID: f.OwnerID, Country: f.Country, Status: status})
}

// Get returns NotFound for unknown ids and Forbidden for orders outside the
// actor's visibility.
func (s *OrderService) Get(ctx context.Context, actor policy.Actor, id string) (*entity.Order, error) {
	o, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewOrder(actor, o) {
		return nil, apperr.Forbidden("order %s is outside your scope", id)
	}
	return o, nil
}
