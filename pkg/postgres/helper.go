package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes the staging repository reacts to.
const (
	CodeUndefinedColumn = "42703"
	CodeUndefinedTable  = "42P01"
)

// Code returns the SQLSTATE carried anywhere in err's chain, or "" when err is not a server error.
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.SQLState()
	}
	return ""
}

// IsUndefinedColumn reports a reference to a column the table does not have.
func IsUndefinedColumn(err error) bool {
	return err != nil && Code(err) == CodeUndefinedColumn
}

// IsUndefinedTable reports a reference to a table that does not exist.
func IsUndefinedTable(err error) bool {
	return err != nil && Code(err) == CodeUndefinedTable
}
