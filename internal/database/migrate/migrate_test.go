package migrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/cricbid/ipl-auction/internal/database"
)

func TestRun(t *testing.T) {
	t.Run("nil database", func(t *testing.T) {
		assert.Error(t, Run(nil, database.DriverSQLite))
	})

	t.Run("sqlite auto-creates schema", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)

		require.NoError(t, Run(db, database.DriverSQLite))

		assert.True(t, db.Migrator().HasTable("teams"))
		assert.True(t, db.Migrator().HasTable("players"))

		// Second run is a no-op.
		assert.NoError(t, Run(db, database.DriverSQLite))
	})

	t.Run("postgres requires migrations directory", func(t *testing.T) {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
		require.NoError(t, err)
		t.Setenv("MIGRATIONS_PATH", "/nonexistent/migrations")

		err = Run(db, database.DriverPostgres)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "migrations directory does not exist")
	})
}

func TestGetMigrationsPath(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		assert.Equal(t, "migrations", GetMigrationsPath())
	})

	t.Run("override", func(t *testing.T) {
		t.Setenv("MIGRATIONS_PATH", "/srv/migrations")
		assert.Equal(t, "/srv/migrations", GetMigrationsPath())
	})
}
