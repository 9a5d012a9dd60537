package repository_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Keshavsaini22/slooze-assignment/configs"
	"github.com/Keshavsaini22/slooze-assignment/repository"
)

func TestIsBusy(t *testing.T) {
	assert.True(t, repository.IsBusy(fmt.Errorf("commit: %w", sqlite3.Error{Code: sqlite3.ErrBusy})))
	assert.True(t, repository.IsBusy(sqlite3.Error{Code: sqlite3.ErrLocked}))
	assert.False(t, repository.IsBusy(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.False(t, repository.IsBusy(errors.New("boom")))
	assert.False(t, repository.IsBusy(nil))
}

func TestIsBusyOnHeldWriteLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lock.db")
	holder, err := configs.OpenDB(&configs.Config{DBDriver: "sqlite", DBSource: path})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(holder))
	other, err := configs.OpenDB(&configs.Config{DBDriver: "sqlite", DBSource: path + "?_busy_timeout=50"})
	require.NoError(t, err)
	t.Cleanup(func() {
		for _, db := range []*gorm.DB{holder, other} {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	})

	// BEGIN IMMEDIATE จอง write lock ทันที
	tx := holder.Begin()
	require.NoError(t, tx.Error)
	defer tx.Rollback()

	err = other.Transaction(func(*gorm.DB) error { return nil })
	require.Error(t, err)
	assert.True(t, repository.IsBusy(err), "got %v", err)
}
