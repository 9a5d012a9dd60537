package repository_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/pkg/apperr"
	"github.com/Keshavsaini22/slooze-assignment/pkg/testdb"
	"github.com/Keshavsaini22/slooze-assignment/repository"
)

func newOrder(owner string, r *entity.Restaurant, m *entity.MenuItem, qty int) *entity.Order {
	line := entity.OrderItem{MenuItemID: m.ID, Quantity: qty, UnitPrice: m.Price}
	return &entity.Order{
		UserID:            owner,
		RestaurantID:      r.ID,
		RestaurantCountry: r.Country,
		TotalAmount:       line.Subtotal(),
		Status:            entity.OrderPending,
		Version:           1,
		Items:             []entity.OrderItem{line},
	}
}

func TestOrderRepositoryCreateAndGet(t *testing.T) {
	f := testdb.Seed(t)
	repo := repository.NewOrderRepository(f.DB)
	ctx := context.Background()

	o := newOrder(f.MemberIN.ID, f.India, f.ButterChicken, 2)
	require.NoError(t, repo.Create(ctx, o))

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("25.00")))
	assert.Nil(t, got.Payment)

	_, err = repo.GetByID(ctx, "missing")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestOrderRepositoryListFilters(t *testing.T) {
	f := testdb.Seed(t)
	repo := repository.NewOrderRepository(f.DB)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newOrder(f.MemberIN.ID, f.India, f.Naan, 1)))
	require.NoError(t, repo.Create(ctx, newOrder(f.MemberIN2.ID, f.India, f.Naan, 1)))
	require.NoError(t, repo.Create(ctx, newOrder(f.MemberUS.ID, f.America, f.Burger, 1)))

	all, err := repo.List(ctx, repository.OrderQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	india, err := repo.List(ctx, repository.OrderQuery{Country: "india"})
	require.NoError(t, err)
	assert.Len(t, india, 2)

	mine, err := repo.List(ctx, repository.OrderQuery{OwnerID: f.MemberIN.ID})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, f.MemberIN.ID, mine[0].UserID)

	confirmed, err := repo.List(ctx, repository.OrderQuery{Status: entity.OrderConfirmed})
	require.NoError(t, err)
	assert.Empty(t, confirmed)
}

func TestOrderRepositoryUpdateGuardedRejectsStaleVersion(t *testing.T) {
	f := testdb.Seed(t)
	repo := repository.NewOrderRepository(f.DB)
	ctx := context.Background()

	o := newOrder(f.MemberIN.ID, f.India, f.Naan, 1)
	require.NoError(t, repo.Create(ctx, o))
	from := []entity.OrderStatus{entity.OrderPending}

	ok, err := repo.UpdateGuarded(ctx, o.ID, 1, from, map[string]any{"status": entity.OrderConfirmed})
	require.NoError(t, err)
	assert.True(t, ok)

	// version เดิม -> แพ้
	ok, err = repo.UpdateGuarded(ctx, o.ID, 1, from, map[string]any{"status": entity.OrderCancelled})
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, got.Status)
	assert.Equal(t, 2, got.Version)
}
