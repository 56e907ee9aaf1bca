// Package database is the Postgres repository layer behind pkg/niche's
// pick history and the optional durable mirrors for runs, jobs, the
// fetch cache, and the orchestrator bus. It hand-writes SQL against
// database/sql + the pgx driver rather than generating a client, since
// schema-driven code generation is off-limits in this exercise (see
// DESIGN.md, "Dropped teacher dependency: entgo.io/ent"); schema
// versioning still goes through golang-migrate with embedded SQL files,
// unchanged from the teacher.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
)

//go:embed migrations
var migrationsFS embed.FS

// Client wraps a connection pool and exposes the table-scoped repositories.
type Client struct {
	db *stdsql.DB

	NicheHistory *NicheHistoryRepo
	Runs         *RunRepo
	Jobs         *JobRepo
	FetchCache   *FetchCacheRepo
	Bus          *BusMessageRepo
}

// DB returns the underlying pool for health checks and ad-hoc queries.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

// NewClient opens a connection pool, applies pending migrations, and
// returns a Client with every repository wired against the same pool.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := stdsql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db, cfg.Database); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Client{
		db:           db,
		NicheHistory: &NicheHistoryRepo{db: db},
		Runs:         &RunRepo{db: db},
		Jobs:         &JobRepo{db: db},
		FetchCache:   &FetchCacheRepo{db: db},
		Bus:          &BusMessageRepo{db: db},
	}, nil
}

// runMigrations applies every pending embedded migration. Migrations are
// embedded with go:embed so production binaries never depend on an
// external migrations/ directory being present on disk.
func runMigrations(db *stdsql.DB, databaseName string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create postgres driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, databaseName, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Close only the source, not driver.Close(), which would also close
	// the shared *sql.DB passed in via postgres.WithInstance above.
	return sourceDriver.Close()
}
