package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Column describes a table column as reported by information_schema.
type Column struct {
	Name     string `db:"column_name"`
	DataType string `db:"data_type"`
	UDTName  string `db:"udt_name"`
}

// GetColumn returns the column of a table in the current schema, nil when it does not exist.
func (p *PostgreSQL) GetColumn(ctx context.Context, table, column string) (*Column, error) {
	query, args, err := columnQuery(table, column)
	if err != nil {
		return nil, err
	}

	var result Column
	err = p.DB.GetContext(ctx, &result, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &result, nil
}

// IndexExists reports whether the named index exists on a table in the current schema.
func (p *PostgreSQL) IndexExists(ctx context.Context, table, index string) (bool, error) {
	query, args, err := indexQuery(table, index)
	if err != nil {
		return false, err
	}

	var count int
	err = p.DB.GetContext(ctx, &count, query, args...)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func columnQuery(table, column string) (string, []any, error) {
	query, args, err := sq.
		StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("column_name", "data_type", "udt_name").
		From("information_schema.columns").
		Where(sq.Expr("table_schema = current_schema()")).
		Where(sq.Eq{"table_name": table, "column_name": column}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build get column query: %w", err)
	}

	return query, args, nil
}

func indexQuery(table, index string) (string, []any, error) {
	query, args, err := sq.
		StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("COUNT(*)").
		From("pg_indexes").
		Where(sq.Expr("schemaname = current_schema()")).
		Where(sq.Eq{"tablename": table, "indexname": index}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("build index exists query: %w", err)
	}

	return query, args, nil
}
