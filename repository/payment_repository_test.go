package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/pkg/testdb"
	"github.com/Keshavsaini22/slooze-assignment/repository"
)

func TestPaymentRepositoryLifecycle(t *testing.T) {
	f := testdb.Seed(t)
	orders := repository.NewOrderRepository(f.DB)
	repo := repository.NewPaymentRepository(f.DB)
	ctx := context.Background()

	o := newOrder(f.MemberIN.ID, f.India, f.Naan, 3)
	require.NoError(t, orders.Create(ctx, o))

	created, err := repo.CreateIfAbsent(ctx, &entity.Payment{
		OrderID: o.ID, Method: entity.PaymentCash, Status: entity.PaymentPending, Amount: o.TotalAmount,
	})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateIfAbsent(ctx, &entity.Payment{
		OrderID: o.ID, Method: entity.PaymentCard, Status: entity.PaymentPending, Amount: o.TotalAmount,
	})
	require.NoError(t, err)
	assert.False(t, created)

	ok, err := repo.UpdateMethod(ctx, o.ID, entity.PaymentUPI)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkPaid(ctx, o.ID, entity.PaymentUPI, o.TotalAmount, time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, ok)

	// จ่ายแล้วห้ามจ่ายซ้ำหรือเปลี่ยน method
	ok, err = repo.MarkPaid(ctx, o.ID, entity.PaymentCash, o.TotalAmount, time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = repo.UpdateMethod(ctx, o.ID, entity.PaymentCash)
	require.NoError(t, err)
	assert.False(t, ok)

	p, err := repo.GetByOrderID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentSuccess, p.Status)
	assert.Equal(t, entity.PaymentUPI, p.Method)
	assert.NotNil(t, p.PaidAt)
}
