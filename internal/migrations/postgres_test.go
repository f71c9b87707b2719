package migrations_test

import (
	"context"
	"testing"

	"github.com/VladPetriv/fathom_migrator/internal/migrations"
	"github.com/VladPetriv/fathom_migrator/pkg/database"
	"github.com/VladPetriv/fathom_migrator/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_Postgres_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo
	db := createTestDB(t)

	for run := 1; run <= 2; run++ {
		err := migrations.Apply(ctx, log, db, migration)
		require.NoError(t, err, "run %d", run)

		column, err := migrations.Verify(ctx, log, db, migration)
		require.NoError(t, err, "run %d", run)
		assert.Equal(t, &database.Column{Name: "fathom_teams", DataType: "ARRAY", UDTName: "_text"}, column)
	}

	var columns int
	err := db.DB.GetContext(ctx, &columns, `
		SELECT COUNT(*) FROM information_schema.columns
		WHERE table_name = 'sales_reps' AND column_name = 'fathom_teams'`)
	require.NoError(t, err)
	assert.Equal(t, 1, columns)

	var indexes int
	err = db.DB.GetContext(ctx, &indexes, `
		SELECT COUNT(*) FROM pg_indexes
		WHERE tablename = 'sales_reps' AND indexname = 'idx_sales_reps_fathom_teams'`)
	require.NoError(t, err)
	assert.Equal(t, 1, indexes)

	var comment string
	err = db.DB.GetContext(ctx, &comment, `
		SELECT col_description('sales_reps'::regclass, attnum)
		FROM pg_attribute
		WHERE attrelid = 'sales_reps'::regclass AND attname = 'fathom_teams'`)
	require.NoError(t, err)
	assert.Contains(t, comment, "Array of Fathom team names")

	_, err = db.DB.ExecContext(ctx, `INSERT INTO sales_reps (name) VALUES ('Jane')`)
	require.NoError(t, err)

	var teams string
	err = db.DB.GetContext(ctx, &teams, `SELECT fathom_teams::text FROM sales_reps WHERE name = 'Jane'`)
	require.NoError(t, err)
	assert.Equal(t, "{}", teams)
}

func TestApply_Postgres_Atomic(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo
	db := createTestDB(t)

	broken := migration
	broken.Statements = []migrations.Statement{
		migration.Statements[0],
		migration.Statements[1],
		{Name: "comment missing column", Query: `COMMENT ON COLUMN sales_reps.missing IS 'nope'`},
	}

	err := migrations.Apply(ctx, log, db, broken)
	assert.ErrorIs(t, err, errs.ErrStatement)

	column, err := db.GetColumn(ctx, "sales_reps", "fathom_teams")
	require.NoError(t, err)
	assert.Nil(t, column, "column must not survive a failed batch")

	exists, err := db.IndexExists(ctx, "sales_reps", "idx_sales_reps_fathom_teams")
	require.NoError(t, err)
	assert.False(t, exists, "index must not survive a failed batch")

	_, err = migrations.Verify(ctx, log, db, migration)
	assert.ErrorIs(t, err, migrations.ErrColumnNotFound)
}

func TestApply_Postgres_MissingTable(t *testing.T) {
	t.Parallel()

	ctx := context.Background() //nolint: forbidigo
	db := createTestDB(t)

	_, err := db.DB.ExecContext(ctx, `DROP TABLE sales_reps`)
	require.NoError(t, err)

	err = migrations.Apply(ctx, log, db, migration)
	assert.ErrorIs(t, err, errs.ErrStatement)
	assert.Contains(t, err.Error(), "add fathom_teams column")
}
