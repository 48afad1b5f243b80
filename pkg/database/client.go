// Package database provides the PostgreSQL client, migrations, and the
// row-level-security tenant scoping used by every per-user statement.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/aurora-sre/aurora/ent"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
)

//go:embed migrations
var migrationsFS embed.FS

// Client wraps two logical connection pools: the admin pool (migrations,
// queue claims, cross-tenant maintenance — role bypasses RLS) and the app
// pool, whose role is subject to the RLS policies. Tenant-scoped work goes
// through WithTenant on the app client.
type Client struct {
	Admin *ent.Client
	App   *ent.Client

	adminDB *stdsql.DB
	appDB   *stdsql.DB
}

// AdminDB returns the raw admin pool for health checks and NOTIFY publishing.
func (c *Client) AdminDB() *stdsql.DB { return c.adminDB }

// AppDB returns the raw app pool.
func (c *Client) AppDB() *stdsql.DB { return c.appDB }

// Close closes both pools.
func (c *Client) Close() error {
	var errs []error
	if err := c.Admin.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := c.App.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// NewClientFromEnt wraps existing ent clients (used by tests).
func NewClientFromEnt(admin, app *ent.Client, adminDB, appDB *stdsql.DB) *Client {
	return &Client{Admin: admin, App: app, adminDB: adminDB, appDB: appDB}
}

// NewClient opens both pools, runs migrations on the admin pool, and pings.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	adminDB, adminEnt, err := openPool(ctx, cfg.AdminDSN(), cfg)
	if err != nil {
		return nil, fmt.Errorf("open admin pool: %w", err)
	}

	if err := runMigrations(adminDB, cfg); err != nil {
		_ = adminEnt.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	appDB, appEnt, err := openPool(ctx, cfg.AppDSN(), cfg)
	if err != nil {
		_ = adminEnt.Close()
		return nil, fmt.Errorf("open app pool: %w", err)
	}

	return &Client{
		Admin:   adminEnt,
		App:     appEnt,
		adminDB: adminDB,
		appDB:   appDB,
	}, nil
}

func openPool(ctx context.Context, dsn string, cfg Config) (*stdsql.DB, *ent.Client, error) {
	db, err := stdsql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	return db, ent.NewClient(ent.Driver(drv)), nil
}

// runMigrations applies embedded SQL migrations with golang-migrate.
// Files are embedded so production binaries carry their own schema.
func runMigrations(db *stdsql.DB, cfg Config) error {
	hasMigrations, err := hasEmbeddedMigrations()
	if err != nil {
		return fmt.Errorf("check embedded migrations: %w", err)
	}
	if !hasMigrations {
		return errors.New("no embedded migration files found — binary may be built incorrectly")
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create postgres driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, cfg.Database, driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Close only the source driver. m.Close() would also close the shared
	// *sql.DB passed via postgres.WithInstance, breaking the ent client.
	if err := sourceDriver.Close(); err != nil {
		return fmt.Errorf("close migration source: %w", err)
	}
	return nil
}

func hasEmbeddedMigrations() (bool, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read embedded migrations: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			return true, nil
		}
	}
	return false, nil
}
