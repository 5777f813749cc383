// Package database provides datastore connection providers.
package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Connector hands out a datastore handle for the duration of one operation.
// The caller owns the returned handle and must Close it.
type Connector interface {
	Acquire(ctx context.Context) (*sqlx.DB, error)
}

// ConnectorFunc adapts an ordinary function to the Connector interface.
type ConnectorFunc func(ctx context.Context) (*sqlx.DB, error)

// Acquire calls f(ctx).
func (f ConnectorFunc) Acquire(ctx context.Context) (*sqlx.DB, error) {
	return f(ctx)
}

// DSNConnector opens a fresh single-connection handle on every Acquire.
// Nothing is shared between calls.
type DSNConnector struct {
	driver string
	dsn    string
}

// NewDSNConnector creates a connector for the given driver name and connection string.
func NewDSNConnector(driver, dsn string) *DSNConnector {
	return &DSNConnector{driver: driver, dsn: dsn}
}

// Acquire connects and pings the datastore.
func (c *DSNConnector) Acquire(ctx context.Context) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, c.driver, c.dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	return db, nil
}
