package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Temutjin2k/ride-analytics/pkg/trm"
)

// Querier is the part of pgx shared by pools and transactions.
type Querier interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

// TxorDB returns the transaction carried by ctx, falling back to db.
func TxorDB(ctx context.Context, db Querier) Querier {
	if tx, ok := trm.FromContext(ctx); ok {
		return tx
	}
	return db
}
