package pool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadConfigFromEnv()

		assert.Equal(t, 25, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
		assert.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DB_MAX_OPEN_CONNS", "50")
		t.Setenv("DB_CONN_MAX_LIFETIME", "1m")

		cfg := LoadConfigFromEnv()

		assert.Equal(t, 50, cfg.MaxOpenConns)
		assert.Equal(t, time.Minute, cfg.ConnMaxLifetime)
	})
}

func TestSetup(t *testing.T) {
	t.Run("applies settings", func(t *testing.T) {
		db := openTestDB(t)

		err := Setup(db, Config{
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: time.Minute,
			ConnMaxIdleTime: time.Minute,
		})

		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		assert.Equal(t, 10, sqlDB.Stats().MaxOpenConnections)
	})

	t.Run("rejects zero max open", func(t *testing.T) {
		db := openTestDB(t)
		assert.Error(t, Setup(db, Config{MaxOpenConns: 0}))
	})

	t.Run("rejects idle above open", func(t *testing.T) {
		db := openTestDB(t)
		assert.Error(t, Setup(db, Config{MaxOpenConns: 2, MaxIdleConns: 5}))
	})
}
