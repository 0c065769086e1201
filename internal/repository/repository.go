// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Rows are soft deleted: every query ignores rows whose deleted_at is set.
// Lookups that find nothing return an error wrapping pgx.ErrNoRows tagged
// with the table name, which sqlerr turns into a 404 for that entity.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func notFound(table string, id uuid.UUID) error {
	return fmt.Errorf("%s id=%s: table:%s:%w", table, id, table, pgx.ErrNoRows)
}

// updateBuilder collects the SET clauses of a partial update.
type updateBuilder struct {
	sets []string
	args pgx.NamedArgs
}

func newUpdate(id uuid.UUID) *updateBuilder {
	return &updateBuilder{args: pgx.NamedArgs{"id": id}}
}

func (u *updateBuilder) set(column string, value any) {
	u.sets = append(u.sets, column+" = @"+column)
	u.args[column] = value
}

func (u *updateBuilder) raw(clause string) {
	u.sets = append(u.sets, clause)
}

// setIf adds column only when the caller supplied a value.
func setIf[T any](u *updateBuilder, column string, value *T) {
	if value != nil {
		u.set(column, *value)
	}
}

func (u *updateBuilder) query(table, idColumn, returning string) string {
	// updated_at is also maintained by a trigger; setting it here keeps an
	// empty update a valid statement.
	sets := append([]string{"updated_at = now()"}, u.sets...)
	return fmt.Sprintf(
		`UPDATE %s SET %s WHERE %s = @id AND deleted_at IS NULL RETURNING %s`,
		table, strings.Join(sets, ", "), idColumn, returning,
	)
}

// listBuilder collects WHERE clauses of a filtered list query.
type listBuilder struct {
	where []string
	args  pgx.NamedArgs
}

func newList(limit, offset int) *listBuilder {
	return &listBuilder{
		where: []string{"deleted_at IS NULL"},
		args:  pgx.NamedArgs{"limit": limit, "offset": offset},
	}
}

func whereIf[T any](l *listBuilder, column string, value *T) {
	if value != nil {
		l.where = append(l.where, column+" = @"+column)
		l.args[column] = *value
	}
}

func (l *listBuilder) query(table, columns string) string {
	return fmt.Sprintf(
		`SELECT %s FROM %s WHERE %s ORDER BY created_at DESC LIMIT @limit OFFSET @offset`,
		columns, table, strings.Join(l.where, " AND "),
	)
}

// softDelete marks a row deleted. A missing or already deleted row is
// reported as not found.
func softDelete(ctx context.Context, pool *pgxpool.Pool, table, idColumn string, id uuid.UUID) error {
	stmt := fmt.Sprintf(
		`UPDATE %s SET deleted_at = now() WHERE %s = @id AND deleted_at IS NULL`,
		table, idColumn,
	)

	tag, err := pool.Exec(ctx, stmt, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound(table, id)
	}
	return nil
}

func getByID[T any](ctx context.Context, pool *pgxpool.Pool, table, idColumn, columns string, id uuid.UUID) (*T, error) {
	stmt := fmt.Sprintf(
		`SELECT %s FROM %s WHERE %s = @id AND deleted_at IS NULL`,
		columns, table, idColumn,
	)
	return queryOne[T](ctx, pool, table, id, stmt, pgx.NamedArgs{"id": id})
}

func updateOne[T any](ctx context.Context, pool *pgxpool.Pool, u *updateBuilder, table, idColumn, columns string, id uuid.UUID) (*T, error) {
	return queryOne[T](ctx, pool, table, id, u.query(table, idColumn, columns), u.args)
}

// queryOne runs a statement expected to return the row identified by id.
func queryOne[T any](ctx context.Context, pool *pgxpool.Pool, table string, id uuid.UUID, stmt string, args pgx.NamedArgs) (*T, error) {
	rows, err := pool.Query(ctx, stmt, args)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(table, id)
		}
		return nil, fmt.Errorf("failed to collect %s row: %w", table, err)
	}

	return &record, nil
}

// insertOne runs an INSERT ... RETURNING statement.
func insertOne[T any](ctx context.Context, pool *pgxpool.Pool, table, stmt string, args pgx.NamedArgs) (*T, error) {
	rows, err := pool.Query(ctx, stmt, args)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	return &record, nil
}

func list[T any](ctx context.Context, pool *pgxpool.Pool, l *listBuilder, table, columns string) ([]T, error) {
	rows, err := pool.Query(ctx, l.query(table, columns), l.args)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("failed to collect %s rows: %w", table, err)
	}

	return records, nil
}
