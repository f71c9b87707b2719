package database

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/VladPetriv/fathom_migrator/pkg/errs"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // registers the postgres driver
)

// PostgreSQL is a struct that contains a connection to PostgreSQL.
type PostgreSQL struct {
	DB *sqlx.DB

	statementTimeout time.Duration
}

var _ Database = (*PostgreSQL)(nil)

// PostgreSQLOptions is a struct that contains options for connecting to PostgreSQL.
type PostgreSQLOptions struct {
	User             string
	Password         string
	Database         string
	Host             string
	Port             string
	SSLMode          string
	ConnectTimeout   time.Duration
	StatementTimeout time.Duration
}

func (p PostgreSQLOptions) convertToConnectionURL() string {
	params := []string{
		"user=" + quoteValue(p.User),
		"password=" + quoteValue(p.Password),
		"dbname=" + quoteValue(p.Database),
		"host=" + quoteValue(p.Host),
	}

	if p.Port != "" {
		params = append(params, "port="+quoteValue(p.Port))
	}
	if p.SSLMode != "" {
		params = append(params, "sslmode="+quoteValue(p.SSLMode))
	}
	if p.ConnectTimeout > 0 {
		params = append(params, "connect_timeout="+strconv.Itoa(roundUpSeconds(p.ConnectTimeout)))
	}

	return strings.Join(params, " ")
}

// String returns the connection description without the password.
func (p PostgreSQLOptions) String() string {
	return fmt.Sprintf("%s@%s:%s/%s", p.User, p.Host, p.Port, p.Database)
}

// quoteValue quotes a key/value connection string value when needed.
func quoteValue(value string) string {
	if value != "" && !strings.ContainsAny(value, ` '\`) {
		return value
	}

	value = strings.ReplaceAll(value, `\`, `\\`)
	value = strings.ReplaceAll(value, `'`, `\'`)

	return "'" + value + "'"
}

// connect_timeout accepts whole seconds only.
func roundUpSeconds(d time.Duration) int {
	seconds := int(d / time.Second)
	if d%time.Second != 0 {
		seconds++
	}

	return seconds
}

// NewPostgreSQL returns a new instance of PostgreSQL.
// The pool is limited to a single connection, so every call shares one session.
func NewPostgreSQL(options PostgreSQLOptions) (*PostgreSQL, error) {
	db, err := sqlx.Open("postgres", options.convertToConnectionURL())
	if err != nil {
		return nil, fmt.Errorf("open postgresql connection: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &PostgreSQL{
		DB:               db,
		statementTimeout: options.StatementTimeout,
	}, nil
}

// Connect opens a session and makes sure the server accepts it.
func Connect(ctx context.Context, options PostgreSQLOptions) (*PostgreSQL, error) {
	db, err := NewPostgreSQL(options)
	if err != nil {
		return nil, errs.Wrap(errs.ErrConnection, err)
	}

	err = db.Ping(ctx)
	if err != nil {
		_ = db.Close()
		return nil, errs.Wrap(errs.ErrConnection, fmt.Errorf("ping %s: %w", options, err))
	}

	return db, nil
}

// Ping pings the database.
func (p *PostgreSQL) Ping(ctx context.Context) error {
	return p.DB.PingContext(ctx)
}

// Close closes the connection with database.
func (p *PostgreSQL) Close() error {
	return p.DB.Close()
}

// Begin starts a transaction on the session.
// The statement timeout is scoped to the transaction with SET LOCAL.
func (p *PostgreSQL) Begin(ctx context.Context) (Tx, error) {
	tx, err := p.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}

	if p.statementTimeout > 0 {
		_, err = tx.ExecContext(ctx, setStatementTimeout(p.statementTimeout))
		if err != nil {
			_ = tx.Rollback()
			return nil, fmt.Errorf("set statement timeout: %w", err)
		}
	}

	return tx, nil
}

func setStatementTimeout(d time.Duration) string {
	return fmt.Sprintf("SET LOCAL statement_timeout = %d", d.Milliseconds())
}
