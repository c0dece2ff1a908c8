package database

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"
)

// SQLCodec maps an entity onto table columns. Columns, Values and Scan use
// the same column order.
type SQLCodec[T any] struct {
	Columns []string
	Values  func(record *T) []any
	Scan    func(scan func(dest ...any) error) (T, error)
}

// SQLTable keeps one entity type in one MySQL table, with the column names
// of the hosted store kept verbatim.
type SQLTable[T any] struct {
	db    *sql.DB
	table string
	codec SQLCodec[T]
}

func NewSQLTable[T any](db *sql.DB, table string, codec SQLCodec[T]) *SQLTable[T] {
	return &SQLTable[T]{db: db, table: table, codec: codec}
}

func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (t *SQLTable[T]) column(key string) (string, error) {
	if !slices.Contains(t.codec.Columns, key) {
		return "", fmt.Errorf("%w: %s.%s", ErrUnknownField, t.table, key)
	}
	return quoteIdent(key), nil
}

func (t *SQLTable[T]) where(fields []Field) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, nil
	}

	conds := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		col, err := t.column(f.Key)
		if err != nil {
			return "", nil, err
		}
		conds = append(conds, col+" = ?")
		args = append(args, f.Value)
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

func (t *SQLTable[T]) buildSelect(q Query) (string, []any, error) {
	cols := make([]string, len(t.codec.Columns))
	for i, c := range t.codec.Columns {
		cols[i] = quoteIdent(c)
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), quoteIdent(t.table))

	where, args, err := t.where(q.Filter)
	if err != nil {
		return "", nil, err
	}
	query += where

	if q.Order != nil {
		col, err := t.column(q.Order.Field)
		if err != nil {
			return "", nil, err
		}
		direction := "ASC"
		if q.Order.Descending {
			direction = "DESC"
		}
		query += " ORDER BY " + col + " " + direction
	}

	return query, args, nil
}

func (t *SQLTable[T]) buildInsert() string {
	cols := make([]string, len(t.codec.Columns))
	for i, c := range t.codec.Columns {
		cols[i] = quoteIdent(c)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", quoteIdent(t.table), strings.Join(cols, ", "), placeholders)
}

func (t *SQLTable[T]) buildUpdate(match []Field, patch []Field) (string, []any, error) {
	if len(match) == 0 {
		return "", nil, ErrEmptyMatch
	}

	sets := make([]string, 0, len(patch))
	args := make([]any, 0, len(patch)+len(match))
	for _, f := range patch {
		col, err := t.column(f.Key)
		if err != nil {
			return "", nil, err
		}
		sets = append(sets, col+" = ?")
		args = append(args, f.Value)
	}

	where, whereArgs, err := t.where(match)
	if err != nil {
		return "", nil, err
	}

	query := fmt.Sprintf("UPDATE %s SET %s%s", quoteIdent(t.table), strings.Join(sets, ", "), where)
	return query, append(args, whereArgs...), nil
}

func (t *SQLTable[T]) buildDelete(match []Field) (string, []any, error) {
	if len(match) == 0 {
		return "", nil, ErrEmptyMatch
	}
	where, args, err := t.where(match)
	if err != nil {
		return "", nil, err
	}
	return "DELETE FROM " + quoteIdent(t.table) + where, args, nil
}

func (t *SQLTable[T]) Select(ctx context.Context, q Query) ([]T, error) {
	query, args, err := t.buildSelect(q)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, MYSQL_TIMEOUT)
	defer cancel()

	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, sqlErr("select", t.table, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		record, err := t.codec.Scan(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", t.table, err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, sqlErr("iterate", t.table, err)
	}
	return out, nil
}

func (t *SQLTable[T]) Insert(ctx context.Context, record *T) error {
	ctx, cancel := context.WithTimeout(ctx, MYSQL_TIMEOUT)
	defer cancel()

	if _, err := t.db.ExecContext(ctx, t.buildInsert(), t.codec.Values(record)...); err != nil {
		return sqlErr("insert", t.table, err)
	}
	return nil
}

func (t *SQLTable[T]) Update(ctx context.Context, match []Field, patch []Field) (int64, error) {
	if len(patch) == 0 {
		if len(match) == 0 {
			return 0, ErrEmptyMatch
		}
		return 0, nil
	}

	query, args, err := t.buildUpdate(match, patch)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, MYSQL_TIMEOUT)
	defer cancel()

	result, err := t.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlErr("update", t.table, err)
	}
	return result.RowsAffected()
}

func (t *SQLTable[T]) Delete(ctx context.Context, match []Field) (int64, error) {
	query, args, err := t.buildDelete(match)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, MYSQL_TIMEOUT)
	defer cancel()

	result, err := t.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, sqlErr("delete", t.table, err)
	}
	return result.RowsAffected()
}
