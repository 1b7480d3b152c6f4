package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes
const (
	uniqueViolation = "23505"
	checkViolation  = "23514"
)

// TxManager 包裝 BeginTx / Rollback / Commit；fn 回傳錯誤時整筆交易回滾
type TxManager interface {
	WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error
	// WithReadOnlyTx 以 repeatable read 讀取一致的快照
	WithReadOnlyTx(ctx context.Context, fn func(tx pgx.Tx) error) error
}

type TxManagerImpl struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) TxManager {
	return &TxManagerImpl{pool: pool}
}

func (m *TxManagerImpl) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return m.run(ctx, pgx.TxOptions{}, fn)
}

func (m *TxManagerImpl) WithReadOnlyTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return m.run(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, fn)
}

func (m *TxManagerImpl) run(ctx context.Context, opts pgx.TxOptions, fn func(tx pgx.Tx) error) error {
	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// dbtx 是 pgxpool.Pool 與 pgx.Tx 共同的查詢介面
type dbtx interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// conn 有交易時使用交易，否則使用連接池
func conn(pool *pgxpool.Pool, tx pgx.Tx) dbtx {
	if tx != nil {
		return tx
	}
	return pool
}

func pgErrorCode(err error) (string, string) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName
	}
	return "", ""
}
