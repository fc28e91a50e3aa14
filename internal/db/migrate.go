package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationsUp applies all pending migrations embedded in the binary.
// golang-migrate's postgres driver works on database/sql, hence lib/pq here
// while the rest of the service talks to postgres through pgx.
func MigrationsUp(params NewDBPoolParams) error {
	conn, err := sql.Open("postgres", params.ConnString())
	if err != nil {
		return fmt.Errorf("open migrations conn: %w", err)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.Warnf("close migrations conn: %s", err)
		}
	}()

	driver, err := postgres.WithInstance(conn, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create postgres migrate driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migration instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Debugln("migrations: no change")
			return nil
		}
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	log.Infof("migrations applied, version: %d, dirty: %t", version, dirty)
	return nil
}
