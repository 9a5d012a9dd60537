package services_test

import (
	"sync"
	"testing"

	"github.com/Keshavsaini22/slooze-assignment/pkg/testdb"
	"github.com/Keshavsaini22/slooze-assignment/repository"
	"github.com/Keshavsaini22/slooze-assignment/services"
)

type recordedEvents struct {
	mu     sync.Mutex
	events []services.OrderEvent
}

func (r *recordedEvents) Publish(e services.OrderEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordedEvents) types() []services.OrderEventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]services.OrderEventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type env struct {
	*testdb.Fixture
	Menus    *repository.MenuRepository
	Carts    *services.CartService
	Orders   *services.OrderService
	Payments *services.PaymentService
	Events   *recordedEvents
}

func newEnv(t *testing.T, policy services.CartConflictPolicy) *env {
	t.Helper()
	f := testdb.Seed(t)

	menus := repository.NewMenuRepository(f.DB)
	rests := repository.NewRestaurantRepository(f.DB)
	orderRepo := repository.NewOrderRepository(f.DB)
	paymentRepo := repository.NewPaymentRepository(f.DB)
	catalog := services.NewCatalog(menus, rests)
	events := &recordedEvents{}

	carts := services.NewCartService(f.DB, repository.NewCartRepository(f.DB), catalog, policy, nil)
	return &env{
		Fixture:  f,
		Menus:    menus,
		Carts:    carts,
		Orders:   services.NewOrderService(f.DB, orderRepo, paymentRepo, carts, catalog, events, nil),
		Payments: services.NewPaymentService(f.DB, paymentRepo, orderRepo, events, nil),
		Events:   events,
	}
}
