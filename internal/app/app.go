package app

import (
	"context"
	"fmt"
	"io"

	"github.com/VladPetriv/fathom_migrator/config"
	"github.com/VladPetriv/fathom_migrator/internal/endpoint"
	"github.com/VladPetriv/fathom_migrator/internal/migrations"
	"github.com/VladPetriv/fathom_migrator/pkg/database"
	"github.com/VladPetriv/fathom_migrator/pkg/logger"
)

// Session is a database session exclusively owned by one run.
type Session interface {
	migrations.Session
	Close() error
}

// ConnectFunc opens a session to the target database.
type ConnectFunc func(ctx context.Context, options database.PostgreSQLOptions) (Session, error)

func connectPostgreSQL(ctx context.Context, options database.PostgreSQLOptions) (Session, error) {
	db, err := database.Connect(ctx, options)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// Runner applies and verifies the schema migration, reporting progress to out.
type Runner struct {
	log       *logger.Logger
	out       io.Writer
	connect   ConnectFunc
	migration migrations.Migration
}

// NewRunner returns a runner for the fathom_teams migration.
// A nil connect uses the PostgreSQL driver.
func NewRunner(log *logger.Logger, out io.Writer, connect ConnectFunc) *Runner {
	if connect == nil {
		connect = connectPostgreSQL
	}

	return &Runner{
		log:       log,
		out:       out,
		connect:   connect,
		migration: migrations.AddFathomTeamsToSalesReps,
	}
}

// Migrate applies the migration in one transaction and verifies the result.
func (r *Runner) Migrate(ctx context.Context, cfg *config.Config) error {
	return r.withSession(ctx, cfg, func(ctx context.Context, session Session) error {
		r.printf("Applying migration %q ...", r.migration.Name)

		err := migrations.Apply(ctx, r.log, session, r.migration)
		if err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}

		column, err := r.verify(ctx, session)
		if err != nil {
			return err
		}

		r.printf("Column added successfully: %s (%s)", column.Name, column.DataType)
		r.printf("Migration complete!")

		return nil
	})
}

// Verify only checks that the migration has been applied.
func (r *Runner) Verify(ctx context.Context, cfg *config.Config) error {
	return r.withSession(ctx, cfg, func(ctx context.Context, session Session) error {
		column, err := r.verify(ctx, session)
		if err != nil {
			return err
		}

		r.printf("Column present: %s (%s)", column.Name, column.DataType)
		return nil
	})
}

func (r *Runner) verify(ctx context.Context, session Session) (*database.Column, error) {
	r.printf("Verifying %s.%s ...", r.migration.Table, r.migration.Column)

	column, err := migrations.Verify(ctx, r.log, session, r.migration)
	if err != nil {
		return nil, fmt.Errorf("verify migration: %w", err)
	}

	return column, nil
}

func (r *Runner) withSession(ctx context.Context, cfg *config.Config, fn func(context.Context, Session) error) error {
	logger := r.log.With().Str("name", "Runner").Logger()

	target, projectID, err := endpoint.Resolve(cfg)
	if err != nil {
		return fmt.Errorf("resolve endpoint: %w", err)
	}

	if cfg.Migration.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Migration.Timeout)
		defer cancel()
	}

	logger.Debug().Str("projectID", projectID).Str("target", target.String()).Msg("resolved endpoint")
	r.printf("Connecting to database %s ...", target)

	session, err := r.connect(ctx, target)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer func() {
		err := session.Close()
		if err != nil {
			logger.Error().Err(err).Msg("close database session")
		}
	}()

	return fn(ctx, session)
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}
