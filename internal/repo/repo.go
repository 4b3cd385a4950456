// Package repo contains all database access logic for the Trip Packer API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ricardofviana/trip-packer/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// beginner is a db that can also open a transaction.
// *pgxpool.Pool begins a real transaction; pgx.Tx begins a savepoint.
type beginner interface {
	db
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repos bundles one repo per table, all bound to the same connection or transaction.
type Repos struct {
	Trips     TripRepo
	Bags      BagRepo
	Items     ItemRepo
	TripBags  TripBagRepo
	TripItems TripItemRepo
	Packings  PackingRepo
}

// NewRepos binds every repo to db.
func NewRepos(db db) Repos {
	return Repos{
		Trips:     NewTripRepo(db),
		Bags:      NewBagRepo(db),
		Items:     NewItemRepo(db),
		TripBags:  NewTripBagRepo(db),
		TripItems: NewTripItemRepo(db),
		Packings:  NewPackingRepo(db),
	}
}

// Store gives the service layer access to the repos, either directly for
// single-statement reads or inside one transaction for read-check-write flows.
type Store interface {
	// Repos returns repos bound to the underlying connection pool.
	Repos() Repos

	// WithinTx runs fn with repos bound to a new transaction. The transaction
	// commits if fn returns nil and rolls back otherwise; fn's error is returned.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}

// pgStore is the Postgres implementation of Store.
type pgStore struct {
	conn  beginner
	repos Repos
}

// NewStore constructs a Store backed by conn.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx so nested
// transactions become savepoints inside the rolled-back test transaction.
func NewStore(conn beginner) Store {
	return &pgStore{conn: conn, repos: NewRepos(conn)}
}

func (s *pgStore) Repos() Repos {
	return s.repos
}

func (s *pgStore) WithinTx(ctx context.Context, fn func(r Repos) error) error {
	return pgx.BeginFunc(ctx, s.conn, func(tx pgx.Tx) error {
		return fn(NewRepos(tx))
	})
}

// Postgres SQLSTATE codes the repos translate into domain errors.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// mapError translates pgx.ErrNoRows and constraint violations into domain
// sentinels. Any other error is returned unchanged.
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", domain.ErrConflict, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, pgErr.ConstraintName)
		case pgCheckViolation:
			return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.ConstraintName)
		}
	}
	return err
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scanX
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// collect drains rows through scan and always returns a non-nil slice.
func collect[T any](rows pgx.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

// fromPgUUID converts a scanned pgtype.UUID into a uuid.UUID.
func fromPgUUID(id pgtype.UUID) uuid.UUID {
	return uuid.UUID(id.Bytes)
}
