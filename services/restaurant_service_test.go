package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keshavsaini22/slooze-assignment/pkg/apperr"
	"github.com/Keshavsaini22/slooze-assignment/pkg/testdb"
	"github.com/Keshavsaini22/slooze-assignment/repository"
	"github.com/Keshavsaini22/slooze-assignment/services"
)

func TestRestaurantScopes(t *testing.T) {
	f := testdb.Seed(t)
	svc := services.NewRestaurantService(repository.NewRestaurantRepository(f.DB), repository.NewMenuRepository(f.DB))
	ctx := context.Background()

	// country ของ member ถูกบังคับ ไม่สนค่าที่ส่งมา
	list, err := svc.List(ctx, f.MemberIN, "America")
	require.NoError(t, err)
	ids := make([]string, 0, len(list))
	for _, r := range list {
		ids = append(ids, r.ID)
	}
	assert.ElementsMatch(t, []string{f.India.ID, f.Trattoria.ID}, ids)

	list, err = svc.List(ctx, f.Admin, "")
	require.NoError(t, err)
	assert.Len(t, list, 3)

	list, err = svc.List(ctx, f.Admin, "america")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, f.America.ID, list[0].ID)

	_, err = svc.Get(ctx, f.ManagerUS, f.India.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	_, err = svc.Get(ctx, f.ManagerUS, "missing")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	menu, err := svc.Menu(ctx, f.MemberIN, f.India.ID)
	require.NoError(t, err)
	assert.Len(t, menu, 2)
	_, err = svc.Menu(ctx, f.MemberIN, f.America.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestMenuPriceUpdate(t *testing.T) {
	f := testdb.Seed(t)
	svc := services.NewMenuService(repository.NewMenuRepository(f.DB), nil)
	ctx := context.Background()

	_, err := svc.UpdatePrice(ctx, f.ManagerIN, f.Naan.ID, decimal.RequireFromString("3"))
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = svc.UpdatePrice(ctx, f.Admin, f.Naan.ID, decimal.Zero)
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))

	_, err = svc.UpdatePrice(ctx, f.Admin, "missing", decimal.RequireFromString("3"))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	m, err := svc.UpdatePrice(ctx, f.Admin, f.Naan.ID, decimal.RequireFromString("3.456"))
	require.NoError(t, err)
	assert.Equal(t, "3.46", m.Price.StringFixed(2))

	_, err = svc.Get(ctx, f.MemberUS, f.Naan.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}
