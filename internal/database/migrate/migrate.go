// Package migrate brings the schema up to date. Postgres deployments
// use versioned SQL migrations via golang-migrate; the sqlite file
// store auto-creates its schema on first run.
package migrate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratePostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/gorm"

	appConfig "github.com/cricbid/ipl-auction/internal/config"
	"github.com/cricbid/ipl-auction/internal/database"
	playerModel "github.com/cricbid/ipl-auction/internal/player/model"
	teamModel "github.com/cricbid/ipl-auction/internal/team/model"
)

// GetMigrationsPath returns the path to the migrations directory.
func GetMigrationsPath() string {
	return appConfig.GetEnv("MIGRATIONS_PATH", "migrations")
}

// Run applies schema changes for the configured driver.
func Run(db *gorm.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	if driver == database.DriverPostgres {
		return runPostgres(db)
	}
	return db.AutoMigrate(&teamModel.Team{}, &playerModel.Player{})
}

// runPostgres applies versioned SQL migrations with golang-migrate.
func runPostgres(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	migrationsPath, err := filepath.Abs(GetMigrationsPath())
	if err != nil {
		return fmt.Errorf("failed to resolve migrations path: %w", err)
	}
	if _, statErr := os.Stat(migrationsPath); os.IsNotExist(statErr) {
		return fmt.Errorf("migrations directory does not exist: %s", migrationsPath)
	}

	instance, err := migratePostgres.WithInstance(sqlDB, &migratePostgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		instance,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
