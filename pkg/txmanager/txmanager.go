// Package txmanager выполняет функции в транзакции, передавая её через context.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/BookEasy-Service/pkg/dbmetrics"
)

// Коды PostgreSQL, после которых транзакцию можно безопасно повторить
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// DefaultMaxRetries число повторов сериализуемой транзакции по умолчанию
const DefaultMaxRetries = 3

var (
	ErrBeginTx  = errors.New("txmanager: failed to begin transaction")
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")
)

// Beginner источник транзакций (*dbmetrics.DB)
type Beginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// RetryObserver получает уведомление о каждом повторе транзакции
type RetryObserver interface {
	ObserveRetry(isolation string)
}

// TransactionManager менеджер транзакций
type TransactionManager struct {
	db         Beginner
	maxRetries int
}

// NewTransactionManager создает менеджер транзакций.
// maxRetries <= 0 означает DefaultMaxRetries.
func NewTransactionManager(db Beginner, maxRetries int) *TransactionManager {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	return &TransactionManager{db: db, maxRetries: maxRetries}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию (READ COMMITTED)
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelDefault}, fn)
}

// DoReadOnly выполняет fn в транзакции только для чтения
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции.
// При конфликте сериализации или дедлоке транзакция повторяется до maxRetries раз,
// fn должна быть идемпотентной в пределах одной попытки.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var err error
	for attempt := 0; attempt <= m.maxRetries; attempt++ {
		if attempt > 0 {
			if obs, ok := m.db.(RetryObserver); ok {
				obs.ObserveRetry("serializable")
			}
		}

		err = m.run(ctx, opts, fn)
		if err == nil || !IsRetryable(err) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
	}

	return err
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов работает в уже открытой транзакции
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitTx, err)
	}

	return nil
}

// IsRetryable проверяет, что ошибка вызвана конфликтом сериализации или дедлоком
func IsRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == codeSerializationFailure || pqErr.Code == codeDeadlockDetected
}
