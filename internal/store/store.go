package store

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Tables lists the schema's tables in dependency order; drops happen in
// reverse so no CASCADE is needed on either engine.
var Tables = []string{"customers", "products", "orders", "order_items", "reviews"}

// Store is the relational destination for a generated dataset. It speaks
// sqlite3 (the default, one file per run) or postgres through the same
// query set.
type Store struct {
	db     *sqlx.DB
	driver string
}

// Open connects to the database and verifies the connection.
func Open(driver, dsn string) (*Store, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite3" {
		// sqlite allows one writer; more connections just trade
		// throughput for SQLITE_BUSY errors.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	return &Store{db: db, driver: driver}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database handle
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Reset destructively recreates the schema: any existing tables with these
// names are dropped, so every load starts from an empty store. Dropping the
// five tables rather than the whole database keeps the behavior identical
// across sqlite and postgres.
func (s *Store) Reset(ctx context.Context) error {
	for i := len(Tables) - 1; i >= 0; i-- {
		if _, err := s.db.ExecContext(ctx, "DROP TABLE IF EXISTS "+Tables[i]); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", Tables[i], err)
		}
	}
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
