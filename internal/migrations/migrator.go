package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/VladPetriv/fathom_migrator/pkg/database"
	"github.com/VladPetriv/fathom_migrator/pkg/errs"
	"github.com/VladPetriv/fathom_migrator/pkg/logger"
	"github.com/rs/zerolog"
)

// Verification failures.
var (
	ErrColumnNotFound = errors.New("column not found after migration")
	ErrUnexpectedType = errors.New("column has unexpected type")
	ErrIndexNotFound  = errors.New("index not found after migration")
)

// Apply runs every statement of the migration inside one transaction.
// Nothing is committed unless all statements succeed.
func Apply(ctx context.Context, log *logger.Logger, session Session, migration Migration) error {
	logger := log.With().Str("name", "Apply").Str("migration", migration.Name).Logger()
	logger.Debug().Int("statements", len(migration.Statements)).Msg("applying migration ...")

	tx, err := session.Begin(ctx)
	if err != nil {
		return errs.Wrap(errs.ErrConnection, fmt.Errorf("begin transaction: %w", err))
	}

	for _, stmt := range migration.Statements {
		logger.Debug().Str("statement", stmt.Name).Msg("executing statement")

		_, err := tx.ExecContext(ctx, stmt.Query)
		if err != nil {
			rollback(&logger, tx)
			return errs.Wrap(errs.ErrStatement, fmt.Errorf("%s: %w", stmt.Name, err))
		}
	}

	err = tx.Commit()
	if err != nil {
		return errs.Wrap(errs.ErrStatement, fmt.Errorf("commit transaction: %w", err))
	}

	logger.Info().Msg("migration was successfully committed")
	return nil
}

func rollback(logger *zerolog.Logger, tx database.Tx) {
	err := tx.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.Error().Err(err).Msg("rollback transaction")
		return
	}

	logger.Warn().Msg("transaction rolled back")
}

// Verify checks the catalog for the column and index the migration creates.
func Verify(ctx context.Context, log *logger.Logger, session Session, migration Migration) (*database.Column, error) {
	logger := log.With().Str("name", "Verify").Str("migration", migration.Name).Logger()

	column, err := session.GetColumn(ctx, migration.Table, migration.Column)
	if err != nil {
		return nil, errs.Wrap(errs.ErrVerification, fmt.Errorf("get column: %w", err))
	}
	if column == nil {
		return nil, errs.Wrap(errs.ErrVerification, fmt.Errorf("%s.%s: %w", migration.Table, migration.Column, ErrColumnNotFound))
	}

	logger.Debug().
		Str("column", column.Name).
		Str("dataType", column.DataType).
		Str("udtName", column.UDTName).
		Msg("column found")

	if migration.UDTName != "" && column.UDTName != migration.UDTName {
		return nil, errs.Wrap(errs.ErrVerification, fmt.Errorf(
			"%s.%s: %w: got %s, want %s",
			migration.Table, migration.Column, ErrUnexpectedType, column.UDTName, migration.UDTName,
		))
	}

	if migration.Index != "" {
		exists, err := session.IndexExists(ctx, migration.Table, migration.Index)
		if err != nil {
			return nil, errs.Wrap(errs.ErrVerification, fmt.Errorf("check index: %w", err))
		}
		if !exists {
			return nil, errs.Wrap(errs.ErrVerification, fmt.Errorf("%s: %w", migration.Index, ErrIndexNotFound))
		}
	}

	return column, nil
}
