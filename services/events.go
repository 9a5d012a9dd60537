package services

import (
	"time"

	"github.com/Keshavsaini22/slooze-assignment/entity"
)

type OrderEventType string

const (
	OrderCreated       OrderEventType = "order.created"
	OrderPlaced        OrderEventType = "order.placed"
	OrderCancelled     OrderEventType = "order.cancelled"
	OrderStatusChanged OrderEventType = "order.status_changed"
	OrderPaid          OrderEventType = "order.paid"
)

// OrderEvent is published after a transition has committed.
type OrderEvent struct {
	Type              OrderEventType     `json:"type"`
	OrderID           string             `json:"orderId"`
	OwnerID           string             `json:"ownerId"`
	RestaurantCountry string             `json:"restaurantCountry"`
	Status            entity.OrderStatus `json:"status"`
	At                time.Time          `json:"at"`
}

func newOrderEvent(t OrderEventType, o *entity.Order) OrderEvent {
	return OrderEvent{
		Type:              t,
		OrderID:           o.ID,
		OwnerID:           o.UserID,
		RestaurantCountry: o.RestaurantCountry,
		Status:            o.Status,
		At:                time.Now().UTC(),
	}
}

// OrderEvents receives committed order events. Publish must not block.
type OrderEvents interface {
	Publish(OrderEvent)
}

type noopEvents struct{}

func (noopEvents) Publish(OrderEvent) {}
