package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/pkg/apperr"
	"github.com/Keshavsaini22/slooze-assignment/policy"
	"github.com/Keshavsaini22/slooze-assignment/repository"
	"gorm.io/gorm"
)

var ErrAlreadyPaid = apperr.BadRequest("order already paid")

type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
	Events    OrderEvents
	Log       *slog.Logger
	now       func() time.Time
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository, orderRepo *repository.OrderRepository, events OrderEvents, log *slog.Logger) *PaymentService {
	if events == nil {
		events = noopEvents{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &PaymentService{
		DB: db, Repo: repo, OrderRepo: orderRepo, Events: events, Log: log,
		now: func() time.Time { return time.Now().UTC() },
	}
}

type CheckoutReq struct {
	OrderID string `json:"orderId" binding:"required"`
	Method  string `json:"method"`
}

type UpdateMethodReq struct {
	Method string `json:"method" binding:"required"`
}

// loadOrder คืน BadRequest เมื่อไม่พบ order (ตาม contract ของ payment)
func loadOrderForPayment(ctx context.Context, repo *repository.OrderRepository, orderID string) (*entity.Order, error) {
	o, err := repo.GetByID(ctx, orderID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.BadRequest("order not found")
	}
	return o, err
}

// Checkout settles the order's payment. There is no gateway, so settlement
// always succeeds; a payment that is already SUCCESS is rejected.
func (s *PaymentService) Checkout(ctx context.Context, actor policy.Actor, in *CheckoutReq) (*entity.Payment, error) {
	method, ok := entity.ParsePaymentMethod(in.Method)
	if !ok {
		return nil, apperr.BadRequest("unknown payment method %q", in.Method)
	}

	var out *entity.Payment
	var order *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := loadOrderForPayment(ctx, s.OrderRepo.WithTx(tx), in.OrderID)
		if err != nil {
			return err
		}
		if !policy.CanViewOrder(actor, o) {
			return apperr.Forbidden("order %s is outside your scope", o.ID)
		}
		order = o

		pr := s.Repo.WithTx(tx)
		existing, err := pr.GetByOrderID(ctx, o.ID)
		if err != nil && !errors.Is(err, apperr.ErrNotFound) {
			return err
		}
		if existing != nil && existing.Status == entity.PaymentSuccess {
			return ErrAlreadyPaid
		}

		paidAt := s.now()
		if existing == nil {
			created, err := pr.CreateIfAbsent(ctx, &entity.Payment{
				OrderID: o.ID,
				Method:  method,
				Status:  entity.PaymentSuccess,
				Amount:  o.TotalAmount,
				PaidAt:  &paidAt,
			})
			if err != nil {
				return err
			}
			if created {
				out, err = pr.GetByOrderID(ctx, o.ID)
				return err
			}
			// มีคนสร้าง payment ตัดหน้า -> ไปทาง MarkPaid
		}

		ok, err := pr.MarkPaid(ctx, o.ID, method, o.TotalAmount, paidAt)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyPaid
		}
		out, err = pr.GetByOrderID(ctx, o.ID)
		return err
	})
	if repository.IsBusy(err) {
		return nil, apperr.Wrap(apperr.KindInvalidState, err, fmt.Sprintf("payment for order %s is being settled by another request", in.OrderID))
	}
	if err != nil {
		return nil, err
	}

	s.Log.InfoContext(ctx, "payment settled",
		slog.String("order_id", out.OrderID),
		slog.String("actor_id", actor.ID),
		slog.String("method", string(out.Method)),
		slog.String("amount", out.Amount.StringFixed(2)))
	s.Events.Publish(newOrderEvent(OrderPaid, order))
	return out, nil
}

// UpdateMethod corrects the declared method of an unsettled payment,
// creating a PENDING one when the order has none yet. Admin only.
func (s *PaymentService) UpdateMethod(ctx context.Context, actor policy.Actor, orderID string, in *UpdateMethodReq) (*entity.Payment, error) {
	if err := policy.Authorize(actor, policy.UpdatePaymentMethod); err != nil {
		return nil, err
	}
	method, ok := entity.ParsePaymentMethod(in.Method)
	if !ok || in.Method == "" {
		return nil, apperr.BadRequest("unknown payment method %q", in.Method)
	}

	var out *entity.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := loadOrderForPayment(ctx, s.OrderRepo.WithTx(tx), orderID)
		if err != nil {
			return err
		}

		pr := s.Repo.WithTx(tx)
		created, err := pr.CreateIfAbsent(ctx, &entity.Payment{
			OrderID: o.ID,
			Method:  method,
			Status:  entity.PaymentPending,
			Amount:  o.TotalAmount,
		})
		if err != nil {
			return err
		}
		if !created {
			ok, err := pr.UpdateMethod(ctx, o.ID, method)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.InvalidState("payment for order %s is already settled", o.ID)
			}
		}
		out, err = pr.GetByOrderID(ctx, o.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Log.InfoContext(ctx, "payment method updated",
		slog.String("order_id", orderID), slog.String("actor_id", actor.ID), slog.String("method", string(method)))
	return out, nil
}

// Get returns the payment of an order the actor can see.
func (s *PaymentService) Get(ctx context.Context, actor policy.Actor, orderID string) (*entity.Payment, error) {
	o, err := s.OrderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewOrder(actor, o) {
		return nil, apperr.Forbidden("order %s is outside your scope", orderID)
	}
	return s.Repo.GetByOrderID(ctx, orderID)
}
