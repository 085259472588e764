package trm

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	tx.rolledBack = true
	return nil
}

type fakeDB struct {
	begun []*fakeTx
	opts  []pgx.TxOptions
}

func (db *fakeDB) BeginTx(_ context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	tx := &fakeTx{}
	db.begun = append(db.begun, tx)
	db.opts = append(db.opts, opts)
	return tx, nil
}

func TestDo_Commit(t *testing.T) {
	db := &fakeDB{}
	m := New(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		_, ok := FromContext(ctx)
		assert.True(t, ok)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, db.begun, 1)
	assert.True(t, db.begun[0].committed)
	assert.False(t, db.begun[0].rolledBack)
}

func TestDo_RollbackOnError(t *testing.T) {
	db := &fakeDB{}
	boom := errors.New("boom")

	err := New(db).Do(context.Background(), func(context.Context) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.True(t, db.begun[0].rolledBack)
	assert.False(t, db.begun[0].committed)
}

func TestDo_RollbackOnPanic(t *testing.T) {
	db := &fakeDB{}
	assert.Panics(t, func() {
		_ = New(db).Do(context.Background(), func(context.Context) error { panic("boom") })
	})
	assert.True(t, db.begun[0].rolledBack)
}

func TestDo_NestedJoinsOuter(t *testing.T) {
	db := &fakeDB{}
	m := New(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return m.Do(ctx, func(context.Context) error { return nil })
	})
	require.NoError(t, err)
	assert.Len(t, db.begun, 1)
}

func TestDoReadOnly(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, New(db).DoReadOnly(context.Background(), func(context.Context) error { return nil }))
	require.Len(t, db.opts, 1)
	assert.Equal(t, pgx.ReadOnly, db.opts[0].AccessMode)
}
