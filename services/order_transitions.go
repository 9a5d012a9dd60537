// services/order_transitions.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/pkg/apperr"
	"github.com/Keshavsaini22/slooze-assignment/policy"
	"github.com/Keshavsaini22/slooze-assignment/repository"
	"gorm.io/gorm"
)

type PlaceOrderReq struct {
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
}

type UpdateStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// transition loads the order inside a transaction, runs check against it,
// then applies updates with a version guard. after runs in the same
// transaction once the guarded update has won.
func (s *OrderService) transition(
	ctx context.Context,
	orderID string,
	check func(o *entity.Order) error,
	updates map[string]any,
	after func(tx *gorm.DB, o *entity.Order) error,
) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		repo := s.Repo.WithTx(tx)
		o, err := repo.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if err := check(o); err != nil {
			return err
		}

		ok, err := repo.UpdateGuarded(ctx, o.ID, o.Version, []entity.OrderStatus{o.Status}, updates)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.InvalidState("order %s was changed by another request", o.ID)
		}
		if after != nil {
			if err := after(tx, o); err != nil {
				return err
			}
		}

		out, err = repo.GetByID(ctx, o.ID)
		return err
	})
	if repository.IsBusy(err) {
		return nil, apperr.Wrap(apperr.KindInvalidState, err, fmt.Sprintf("order %s is being changed by another request", orderID))
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Place confirms a PENDING order, records the delivery address and opens a
// PENDING payment for the order total.
func (s *OrderService) Place(ctx context.Context, actor policy.Actor, orderID string, in *PlaceOrderReq) (*entity.Order, error) {
	if err := policy.Authorize(actor, policy.PlaceOrder); err != nil {
		return nil, err
	}
	address := strings.TrimSpace(in.Address)
	if address == "" {
		return nil, apperr.BadRequest("delivery address is required")
	}
	method, ok := entity.ParsePaymentMethod(in.PaymentMethod)
	if !ok {
		return nil, apperr.BadRequest("unknown payment method %q", in.PaymentMethod)
	}

	scope := policy.ScopeFor(actor)
	o, err := s.transition(ctx, orderID,
		func(o *entity.Order) error {
			if err := scope.Require(o.RestaurantCountry); err != nil {
				return err
			}
			if o.Status != entity.OrderPending {
				return apperr.InvalidState("order is %s; only PENDING orders can be placed", o.Status)
			}
			return nil
		},
		map[string]any{"status": entity.OrderConfirmed, "address": address},
		func(tx *gorm.DB, o *entity.Order) error {
			// มี payment อยู่แล้ว (เช่น admin ตั้ง method ไว้ก่อน) -> ใช้ของเดิม
			_, err := s.PaymentRepo.WithTx(tx).CreateIfAbsent(ctx, &entity.Payment{
				OrderID: o.ID,
				Method:  method,
				Status:  entity.PaymentPending,
				Amount:  o.TotalAmount,
			})
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	s.Log.InfoContext(ctx, "order placed",
		slog.String("order_id", o.ID), slog.String("actor_id", actor.ID), slog.String("method", string(method)))
	s.Events.Publish(newOrderEvent(OrderPlaced, o))
	return o, nil
}

// Cancel moves any non-terminal order to CANCELLED. The payment is left as
// is; a settled payment on a cancelled order is reconciled elsewhere.
func (s *OrderService) Cancel(ctx context.Context, actor policy.Actor, orderID string) (*entity.Order, error) {
	if err := policy.Authorize(actor, policy.CancelOrder); err != nil {
		return nil, err
	}
	scope := policy.ScopeFor(actor)
	o, err := s.transition(ctx, orderID,
		func(o *entity.Order) error {
			if err := scope.Require(o.RestaurantCountry); err != nil {
				return err
			}
			if o.Status.IsTerminal() {
				return apperr.InvalidState("order is already %s", o.Status)
			}
			return nil
		},
		map[string]any{"status": entity.OrderCancelled},
		nil,
	)
	if err != nil {
		return nil, err
	}

	s.Log.InfoContext(ctx, "order cancelled", slog.String("order_id", o.ID), slog.String("actor_id", actor.ID))
	s.Events.Publish(newOrderEvent(OrderCancelled, o))
	return o, nil
}

// UpdateStatus is the fulfillment path (PREPARING, READY, COMPLETED). It is
// not country scoped; callers gate it by role.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, apperr.BadRequest("unknown order status %q", status)
	}
	o, err := s.transition(ctx, orderID,
		func(o *entity.Order) error {
			if o.Status == entity.OrderPending && status == entity.OrderConfirmed {
				return apperr.InvalidState("pending orders are confirmed by placing them")
			}
			if !o.Status.CanTransitionTo(status) {
				return apperr.InvalidState("cannot move order from %s to %s", o.Status, status)
			}
			return nil
		},
		map[string]any{"status": status},
		nil,
	)
	if err != nil {
		return nil, err
	}

	s.Log.InfoContext(ctx, "order status updated", slog.String("order_id", o.ID), slog.String("status", string(status)))
	evt := OrderStatusChanged
	if status == entity.OrderCancelled {
		evt = OrderCancelled
	}
	s.Events.Publish(newOrderEvent(evt, o))
	return o, nil
}
