// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/brucewavesmarket/saas-starter/internal/logging"
	"github.com/brucewavesmarket/saas-starter/internal/monitoring"
	"github.com/brucewavesmarket/saas-starter/internal/tracing"
)

const defaultTxTimeout = time.Second * 60

type lazyTxContextKey struct{}
type identityContextKey struct{}

var lazyTxKey lazyTxContextKey
var identityKey identityContextKey

// WithIdentity attaches the authenticated identity id so the request
// transaction can expose it to the row level security policies.
func WithIdentity(ctx context.Context, identityID string) context.Context {
	return context.WithValue(ctx, identityKey, identityID)
}

func IdentityFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(identityKey).(string); ok {
		return id
	}
	return ""
}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// lazyTx holds per-request transaction state, created on first statement.
type lazyTx struct {
	db         *sql.DB
	tx         TxInterface
	logger     logging.LoggerInterface
	identityID string
	committed  bool
	cancel     context.CancelFunc
	hooks      []func(context.Context)
}

func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}

	// Detached from the request context so a client disconnect does not
	// roll back a half-applied mutation; bounded by a timeout instead.
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	// Expose the caller's identity to the row level security policies for
	// the lifetime of this transaction.
	if lt.identityID != "" {
		if _, err := tx.Exec("SELECT set_config('app.identity_id', $1, true)", lt.identityID); err != nil {
			_ = tx.Rollback()
			cancel()
			return nil, fmt.Errorf("failed to set identity on transaction: %w", err)
		}
	}

	lt.tx = tx
	lt.cancel = cancel
	return tx, nil
}

func (lt *lazyTx) runHooks(ctx context.Context) {
	for _, hook := range lt.hooks {
		hook(DetachTx(ctx))
	}
}

func (lt *lazyTx) isStarted() bool {
	return lt.tx != nil
}

type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ DBClientInterface = (*DBClient)(nil)

// Statement returns a squirrel builder bound to the request transaction when
// one is attached to the context, otherwise to the pool.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	if lt := lazyTxFromContext(ctx); lt != nil {
		tx, err := lt.get()
		if err != nil {
			d.logger.Errorf("failed to create lazy transaction: %v", err)
		} else {
			return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(tx)
		}
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(d.db)
}

func lazyTxFromContext(ctx context.Context) *lazyTx {
	if lt, ok := ctx.Value(lazyTxKey).(*lazyTx); ok && lt != nil {
		return lt
	}
	return nil
}

// DetachTx returns a context whose statements run outside any request
// transaction. Used for writes that must not roll back with the request,
// such as audit log records.
func DetachTx(ctx context.Context) context.Context {
	return context.WithValue(ctx, lazyTxKey, (*lazyTx)(nil))
}

// AfterCommit defers fn until the request transaction has committed, so fn
// can read rows the transaction created. A rollback discards fn. Outside a
// transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func(context.Context)) {
	if lt := lazyTxFromContext(ctx); lt != nil {
		lt.hooks = append(lt.hooks, fn)
		return
	}
	fn(ctx)
}

// WithTx runs fn with a context carrying a lazily-created transaction. The
// transaction commits if fn succeeds and rolls back otherwise. If fn never
// touched the database, nothing is started or committed.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	lt := &lazyTx{
		db:         d.db,
		logger:     d.logger,
		identityID: IdentityFromContext(ctx),
	}
	txCtx := context.WithValue(ctx, lazyTxKey, lt)

	defer func() {
		if lt.isStarted() && !lt.committed {
			if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback transaction: %v", err)
			}
		}
		if lt.cancel != nil {
			lt.cancel()
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	if lt.isStarted() {
		if err := lt.tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %v", err)
		}
		lt.committed = true
	}

	lt.runHooks(txCtx)

	return nil
}

// Ping reports whether the database is reachable.
func (d *DBClient) Ping(ctx context.Context) error {
	return d.pool.Ping(ctx)
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient creates a pgx pool for the given DSN, wrapped for database/sql
// usage by the statement builder.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Fatalf("DSN validation failed, shutting down, err: %v", err)
	}

	if cfg.TracingEnabled {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %v", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to start metrics collection for database: %v", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	d := new(DBClient)
	d.pool = pool
	d.db = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}
