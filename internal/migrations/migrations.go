package migrations

import (
	"context"
	"strings"

	"github.com/VladPetriv/fathom_migrator/pkg/database"
)

// Session provides the database operations a migration run needs.
//
//go:generate mockery --dir . --name Session --output ./mocks
type Session interface {
	// Begin starts a transaction.
	Begin(ctx context.Context) (database.Tx, error)
	// GetColumn returns a column from the catalog, nil when absent.
	GetColumn(ctx context.Context, table, column string) (*database.Column, error)
	// IndexExists reports whether an index is present on the table.
	IndexExists(ctx context.Context, table, index string) (bool, error)
}

//go:generate mockery --dir ../../pkg/database --name Tx --output ./mocks

var _ Session = (*database.PostgreSQL)(nil)

// Statement is a single named DDL statement.
type Statement struct {
	Name  string
	Query string
}

// Migration is an ordered batch of statements applied in one transaction,
// together with what the catalog must show afterwards.
type Migration struct {
	Name       string
	Statements []Statement

	Table   string
	Column  string
	Index   string
	UDTName string
}

// SQL renders the migration as a script for manual execution.
func (m Migration) SQL() string {
	var b strings.Builder

	b.WriteString("-- " + m.Name + "\n")
	b.WriteString("BEGIN;\n\n")
	for _, stmt := range m.Statements {
		b.WriteString("-- " + stmt.Name + "\n")
		b.WriteString(stmt.Query + ";\n\n")
	}
	b.WriteString("COMMIT;\n")

	return b.String()
}

// Migrations lists every migration the tool knows about, in apply order.
var Migrations = []Migration{
	AddFathomTeamsToSalesReps,
}
