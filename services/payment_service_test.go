package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/pkg/apperr"
	"github.com/Keshavsaini22/slooze-assignment/services"
)

func TestCheckoutSettlesOnce(t *testing.T) {
	e := newEnv(t, services.CartReplace)
	ctx := context.Background()
	o := createIndiaOrder(t, e, e.MemberIN)
	place(t, e, e.ManagerIN, o.ID)

	p, err := e.Payments.Checkout(ctx, e.MemberIN, &services.CheckoutReq{OrderID: o.ID, Method: "card"})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentSuccess, p.Status)
	assert.Equal(t, entity.PaymentCard, p.Method)
	assert.True(t, p.Amount.Equal(o.TotalAmount))
	require.NotNil(t, p.PaidAt)

	_, err = e.Payments.Checkout(ctx, e.MemberIN, &services.CheckoutReq{OrderID: o.ID, Method: "CASH"})
	assert.ErrorIs(t, err, services.ErrAlreadyPaid)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	got, err := e.Payments.Get(ctx, e.MemberIN, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentCard, got.Method)
}

func TestCheckoutWithoutPriorPayment(t *testing.T) {
	e := newEnv(t, services.CartReplace)
	ctx := context.Background()
	o := createIndiaOrder(t, e, e.MemberIN)

	p, err := e.Payments.Checkout(ctx, e.MemberIN, &services.CheckoutReq{OrderID: o.ID})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentSuccess, p.Status)
	assert.Equal(t, entity.PaymentCash, p.Method)
	assert.Contains(t, e.Events.types(), services.OrderPaid)
}

func TestCheckoutValidation(t *testing.T) {
	e := newEnv(t, services.CartReplace)
	ctx := context.Background()
	o := createIndiaOrder(t, e, e.MemberIN)

	_, err := e.Payments.Checkout(ctx, e.MemberIN, &services.CheckoutReq{OrderID: "missing"})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "order not found")

	_, err = e.Payments.Checkout(ctx, e.MemberIN, &services.CheckoutReq{OrderID: o.ID, Method: "GOLD"})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	_, err = e.Payments.Checkout(ctx, e.MemberIN2, &services.CheckoutReq{OrderID: o.ID})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = e.Payments.Checkout(ctx, e.ManagerUS, &services.CheckoutReq{OrderID: o.ID})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestConcurrentCheckoutHasSingleWinner(t *testing.T) {
	e := newEnv(t, services.CartReplace)
	ctx := context.Background()
	o := createIndiaOrder(t, e, e.MemberIN)
	place(t, e, e.ManagerIN, o.ID)

	const n = 6
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.Payments.Checkout(ctx, e.Admin, &services.CheckoutReq{OrderID: o.ID, Method: "UPI"})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, services.ErrAlreadyPaid)
	}
	assert.Equal(t, 1, wins)
}

func TestUpdatePaymentMethod(t *testing.T) {
	e := newEnv(t, services.CartReplace)
	ctx := context.Background()
	o := createIndiaOrder(t, e, e.MemberIN)

	_, err := e.Payments.UpdateMethod(ctx, e.ManagerIN, o.ID, &services.UpdateMethodReq{Method: "CARD"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = e.Payments.UpdateMethod(ctx, e.Admin, "missing", &services.UpdateMethodReq{Method: "CARD"})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	_, err = e.Payments.UpdateMethod(ctx, e.Admin, o.ID, &services.UpdateMethodReq{Method: "IOU"})
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	// ยังไม่มี payment -> สร้าง PENDING
	p, err := e.Payments.UpdateMethod(ctx, e.Admin, o.ID, &services.UpdateMethodReq{Method: "card"})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentPending, p.Status)
	assert.Equal(t, entity.PaymentCard, p.Method)
	assert.True(t, p.Amount.Equal(o.TotalAmount))

	p, err = e.Payments.UpdateMethod(ctx, e.Admin, o.ID, &services.UpdateMethodReq{Method: "UPI"})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentUPI, p.Method)
	assert.Equal(t, entity.PaymentPending, p.Status)

	_, err = e.Payments.Checkout(ctx, e.Admin, &services.CheckoutReq{OrderID: o.ID, Method: "UPI"})
	require.NoError(t, err)

	_, err = e.Payments.UpdateMethod(ctx, e.Admin, o.ID, &services.UpdateMethodReq{Method: "CASH"})
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestPaymentGetVisibility(t *testing.T) {
	e := newEnv(t, services.CartReplace)
	ctx := context.Background()
	o := createIndiaOrder(t, e, e.MemberIN)

	_, err := e.Payments.Get(ctx, e.MemberIN, o.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	place(t, e, e.ManagerIN, o.ID)
	_, err = e.Payments.Get(ctx, e.MemberIN2, o.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	p, err := e.Payments.Get(ctx, e.MemberIN, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, p.OrderID)
}

func TestCheckoutRacesWithoutPlacedPayment(t *testing.T) {
	e := newEnv(t, services.CartReplace)
	ctx := context.Background()

	for round := 0; round < 10; round++ {
		o := createIndiaOrder(t, e, e.MemberIN)

		var wg sync.WaitGroup
		errs := make([]error, 4)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = e.Payments.Checkout(ctx, e.Admin, &services.CheckoutReq{OrderID: o.ID, Method: "CARD"})
			}(i)
		}
		wg.Wait()

		wins := 0
		for _, err := range errs {
			if err == nil {
				wins++
				continue
			}
			assert.ErrorIs(t, err, services.ErrAlreadyPaid, "round %d", round)
		}
		assert.Equal(t, 1, wins, "round %d", round)
	}
}
