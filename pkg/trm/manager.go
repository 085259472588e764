package trm

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Beginner starts transactions. *pgxpool.Pool satisfies it.
type Beginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// Manager runs functions inside a pgx transaction stored in the context.
type Manager struct {
	db Beginner
}

// New returns a new Transaction Manager
func New(db Beginner) *Manager {
	return &Manager{db: db}
}

type ctxKeyTx struct{}
type ctxKeyOptions struct{}

// FromContext returns the transaction started by Do, if any.
func FromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(ctxKeyTx{}).(pgx.Tx)
	return tx, ok
}

// WithOptions sets the options used by the next Do that starts a transaction.
func WithOptions(ctx context.Context, opts pgx.TxOptions) context.Context {
	return context.WithValue(ctx, ctxKeyOptions{}, opts)
}

// Do executes fn within a transaction. A transaction already present in ctx is
// reused and left for its owner to finish. Otherwise a new one is started,
// rolled back when fn fails or panics and committed when it succeeds.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := FromContext(ctx); ok {
		return fn(ctx)
	}

	opts, _ := ctx.Value(ctxKeyOptions{}).(pgx.TxOptions)
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to start new transaction: %w", err)
	}
	ctx = context.WithValue(ctx, ctxKeyTx{}, tx)

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				err = fmt.Errorf("failed to rollback tx: %v (original error: %w)", rbErr, err)
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("failed to commit tx: %w", commitErr)
		}
	}()

	return fn(ctx)
}

// DoReadOnly executes fn within a read-only transaction.
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(WithOptions(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}), fn)
}
