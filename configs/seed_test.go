package configs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Keshavsaini22/slooze-assignment/configs"
	"github.com/Keshavsaini22/slooze-assignment/entity"
	"github.com/Keshavsaini22/slooze-assignment/pkg/testdb"
)

func TestSeedDemoIsIdempotent(t *testing.T) {
	db := testdb.Open(t)
	require.NoError(t, configs.SeedDemo(db))
	require.NoError(t, configs.SeedDemo(db))

	var users, rests, menus int64
	require.NoError(t, db.Model(&entity.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&entity.Restaurant{}).Count(&rests).Error)
	require.NoError(t, db.Model(&entity.MenuItem{}).Count(&menus).Error)
	assert.EqualValues(t, 6, users)
	assert.EqualValues(t, 4, rests)
	assert.EqualValues(t, 10, menus)
}
