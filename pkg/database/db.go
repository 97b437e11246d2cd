// Package database owns the two datasource pools and the scoped
// transaction helpers around them.
//
// The public pool serves clients, users, products and carts; the private
// pool serves suppliers, purchase orders, invoices, categories and
// warehouses. The two are independent by design: there is no cross-pool
// transaction anywhere in this codebase, and an operation that touches
// both runs two units of work whose second failure does not undo the
// first.
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tiendahq/tienda/config"
	"github.com/tiendahq/tienda/pkg/apperr"
	"github.com/tiendahq/tienda/pkg/metrics"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// Public is the pool for the public schema (clients, users, products, carts).
	Public *gorm.DB
	// Private is the pool for the private schema (suppliers, orders, invoices).
	Private *gorm.DB
)

// Connect opens both pools and configures their connection limits.
// Returns an error instead of calling log.Fatal so the caller can shut
// down gracefully.
func Connect() error {
	driver := config.DatabaseDriver()

	var err error
	Public, err = open(driver, config.PublicDSN())
	if err != nil {
		return fmt.Errorf("database: public pool: %w", err)
	}

	Private, err = open(driver, config.PrivateDSN())
	if err != nil {
		return fmt.Errorf("database: private pool: %w", err)
	}

	return nil
}

// Close releases both pools. Called once at shutdown.
func Close() error {
	var errs []error
	for _, db := range []*gorm.DB{Public, Private} {
		if db == nil {
			continue
		}
		if sqlDB, err := db.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}

func open(driver, dsn string) (*gorm.DB, error) {
	dialector, err := buildDialector(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("build dialector: %w", err)
	}

	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // use pkg/logger, not GORM's own
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(2 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("ping: %w", err)
	}

	return db, nil
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres, mysql, sqlserver)", driver)
	}
}

// poolLabel names a pool for metric labels. Tests and ad-hoc sessions
// pass pools that are neither global; those read as "custom".
func poolLabel(db *gorm.DB) string {
	switch db {
	case Public:
		return "public"
	case Private:
		return "private"
	default:
		return "custom"
	}
}

// Transaction runs fn inside one transaction on the given pool: scoped
// acquisition with guaranteed release. It commits on a nil return, rolls
// back and rethrows on any error, and bounds the wait for a connection
// with the configured pool timeout — a timed-out acquisition fails the
// whole operation with ResourceExhausted instead of hanging.
//
// Once fn starts it runs to commit or rollback; the deadline applies to
// acquisition, not to mid-flight cancellation.
func Transaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	defer metrics.ObserveDBQuery(poolLabel(db), "transaction", time.Now())

	acquireCtx, cancel := context.WithTimeout(ctx, config.PoolTimeout())
	defer cancel()

	tx := db.WithContext(acquireCtx).Begin()
	if tx.Error != nil {
		if acquireCtx.Err() != nil || errors.Is(tx.Error, context.DeadlineExceeded) {
			return apperr.ResourceExhausted("connection pool wait timed out", tx.Error)
		}
		return fmt.Errorf("database: begin: %w", tx.Error)
	}

	// The deadline bounds acquisition only; once begun the transaction
	// runs to commit or rollback under the caller's context.
	tx = tx.WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("database: commit: %w", err)
	}
	return nil
}

// OpenNativeSession authenticates against the engine with the supplied
// credentials and returns the resulting session. The engine itself proves
// the principal's identity; a failure for any reason reads as bad
// credentials to the caller. The returned closer must run before login
// returns, success or not — the session exists only to authenticate.
func OpenNativeSession(user, password string) (*gorm.DB, func(), error) {
	dsn := config.NativeDSN(user, password)
	if dsn == "" {
		return nil, nil, fmt.Errorf("database: native sessions not configured for driver %q", config.DatabaseDriver())
	}

	dialector, err := buildDialector(config.DatabaseDriver(), dsn)
	if err != nil {
		return nil, nil, err
	}

	session, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("database: native open: %w", err)
	}

	sqlDB, err := session.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("database: native sql.DB: %w", err)
	}

	// A single authentication session, never pooled.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("database: native ping: %w", err)
	}

	closer := func() { sqlDB.Close() }
	return session, closer, nil
}
