// Package dbmetrics оборачивает *sql.DB: замеряет длительность запросов
// и периодически публикует статистику connection pool.
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/BookEasy-Service/pkg/metrics"
)

// DefaultStatsInterval период сбора статистики пула
const DefaultStatsInterval = 15 * time.Second

// DB обёртка над *sql.DB. Без метрик (metrics == nil) просто проксирует вызовы.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	name    string
}

// Plain оборачивает *sql.DB без сбора метрик
func Plain(db *sql.DB) *DB {
	return &DB{db: db}
}

// Wrap оборачивает *sql.DB и запускает сбор статистики пула до закрытия stopCh
func Wrap(db *sql.DB, m *metrics.Metrics, name string, interval time.Duration, stopCh <-chan struct{}) *DB {
	w := &DB{db: db, metrics: m, name: name}
	if m != nil {
		go w.collectStats(interval, stopCh)
	}
	return w
}

// WrapWithDefault то же, что Wrap, с интервалом DefaultStatsInterval
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, name string, stopCh <-chan struct{}) *DB {
	return Wrap(db, m, name, DefaultStatsInterval, stopCh)
}

// Unwrap возвращает исходный *sql.DB
func (d *DB) Unwrap() *sql.DB {
	return d.db
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe(query, time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe(query, time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe(query, time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// BeginTx начинает транзакцию. Запросы внутри неё тоже замеряются.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

// ObserveRetry учитывает повтор транзакции
func (d *DB) ObserveRetry(isolation string) {
	if d.metrics == nil {
		return
	}
	d.metrics.DBTxRetriesTotal.WithLabelValues(isolation).Inc()
}

func (d *DB) observe(query string, start time.Time) {
	if d.metrics == nil {
		return
	}
	d.metrics.DBQueryDuration.WithLabelValues(operation(query)).Observe(time.Since(start).Seconds())
}

func (d *DB) collectStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		d.publishStats()
		select {
		case <-ticker.C:
		case <-stopCh:
			return
		}
	}
}

func (d *DB) publishStats() {
	stats := d.db.Stats()
	d.metrics.DBOpenConnections.WithLabelValues(d.name).Set(float64(stats.OpenConnections))
	d.metrics.DBInUseConnections.WithLabelValues(d.name).Set(float64(stats.InUse))
	d.metrics.DBIdleConnections.WithLabelValues(d.name).Set(float64(stats.Idle))
	d.metrics.DBWaitCount.WithLabelValues(d.name).Set(float64(stats.WaitCount))
}

// Tx транзакция с замером запросов
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.parent.observe(query, time.Now())
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.parent.observe(query, time.Now())
	return t.tx.QueryContext(ctx, query, args...)
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.parent.observe(query, time.Now())
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// operation первое ключевое слово запроса в нижнем регистре: select, insert, ...
func operation(query string) string {
	query = strings.TrimSpace(query)
	if i := strings.IndexAny(query, " \n\t"); i > 0 {
		query = query[:i]
	}
	if query == "" {
		return "unknown"
	}
	return strings.ToLower(query)
}
