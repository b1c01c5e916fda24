package database

import "context"

// Querier is the query surface shared by the pool and an open transaction.
// Repositories accept a Querier so the same code runs standalone or inside
// a reconciliation transaction.
type Querier interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

type DB interface {
	Querier

	Ping(ctx context.Context) error
	Close() error

	Begin(ctx context.Context) (Tx, error)

	// InTx runs fn inside a transaction. The transaction commits when fn
	// returns nil and rolls back otherwise; a commit failure is returned.
	InTx(ctx context.Context, fn func(q Querier) error) error
}

type Tx interface {
	Querier

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
