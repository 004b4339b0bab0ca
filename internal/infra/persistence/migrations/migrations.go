// Package migrations applies the embedded SQL schema with golang-migrate.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"contacts/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

const sourceDir = "sql"

// Source opens the embedded migration files.
func Source() (source.Driver, error) {
	src, err := iofs.New(files, sourceDir)
	if err != nil {
		return nil, errors.Wrap(err, "open embedded migrations")
	}

	return src, nil
}

// Migrator runs schema migrations over a dedicated connection of a shared pool.
type Migrator struct {
	m *migrate.Migrate
}

// New prepares a migrator. Close releases the connection but leaves db open.
func New(ctx context.Context, db *sql.DB, logger *slog.Logger) (*Migrator, error) {
	src, err := Source()
	if err != nil {
		return nil, err
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "acquire migration connection")
	}

	driver, err := migratepg.WithConnection(ctx, conn, &migratepg.Config{})
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "create migrate postgres driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = driver.Close()

		return nil, errors.Wrap(err, "create migrator")
	}
	if logger != nil {
		m.Log = &slogAdapter{logger: logger}
	}

	return &Migrator{m: m}, nil
}

// Up applies every pending migration. No pending migration is not an error.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migrate up")
	}

	return nil
}

// Down rolls back the given number of steps.
func (mg *Migrator) Down(steps int) error {
	if steps <= 0 {
		steps = 1
	}
	if err := mg.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migrate down")
	}

	return nil
}

// Version reports the applied version; ok is false on an empty database.
func (mg *Migrator) Version() (version uint, dirty bool, ok bool, err error) {
	version, dirty, err = mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, errors.Wrap(err, "migrate version")
	}

	return version, dirty, true, nil
}

// Close releases the source and the migration connection.
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()

	return errors.Join(srcErr, dbErr)
}

type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Printf(format string, v ...any) {
	a.logger.Info("migrate", slog.String("message", fmt.Sprintf(format, v...)))
}

func (a *slogAdapter) Verbose() bool {
	return false
}
