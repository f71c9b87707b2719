package database

import (
	"context"
	"database/sql"
)

// Database represents a database connection.
type Database interface {
	// Ping pings the database.
	Ping(ctx context.Context) error
	// Close closes the connection with database.
	Close() error
}

// Tx represents an open database transaction.
type Tx interface {
	// ExecContext executes a statement inside the transaction.
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	// Commit makes every statement of the transaction durable.
	Commit() error
	// Rollback aborts the transaction.
	Rollback() error
}
