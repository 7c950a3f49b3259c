package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

// MigrationsDir is the migrate source URL, relative to the working directory.
var MigrationsDir = "file://migrations"

func newMigrator(databaseURL string) (*migrate.Migrate, error) {
	m, err := migrate.New(MigrationsDir, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create migrator from %s: %w", MigrationsDir, err)
	}
	return m, nil
}

// RunMigrations brings the dashboard schema up to the latest version.
func RunMigrations(databaseURL string) error {
	m, err := newMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("schema version %d is dirty", version)
	}
	log.Info().Uint("version", version).Str("source", MigrationsDir).Msg("schema up to date")
	return nil
}

// RollbackMigrations drops every dashboard table.
func RollbackMigrations(databaseURL string) error {
	m, err := newMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	log.Info().Msg("dashboard schema rolled back")
	return nil
}
