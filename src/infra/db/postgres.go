package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/sethvargo/go-retry"

	"jokeshare/src/infra/config"
)

// Postgres owns the pgx pool shared by the repositories.
type Postgres struct {
	Pool *pgxpool.Pool
	dsn  string
	log  *slog.Logger
}

// connectBackoff is the first delay between startup pings; it doubles each attempt.
const connectBackoff = 250 * time.Millisecond

// New opens the pool and pings the server until it answers or
// cfg.ConnectRetries is used up. When log has debug enabled every statement
// is logged, without its arguments.
func New(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*Postgres, error) {
	dsn := cfg.DSN()
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	if log.Enabled(ctx, slog.LevelDebug) {
		poolCfg.ConnConfig.Tracer = queryTracer(log)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	backoff := retry.WithMaxRetries(cfg.ConnectRetries, retry.NewExponential(connectBackoff))
	if err := pingWithRetry(ctx, pool.Ping, backoff, log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("connected to postgres",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Name,
		"max_conns", poolCfg.MaxConns,
	)
	return &Postgres{Pool: pool, dsn: dsn, log: log}, nil
}

// pingWithRetry calls ping until it succeeds, the backoff gives up or ctx ends.
func pingWithRetry(ctx context.Context, ping func(context.Context) error, backoff retry.Backoff, log *slog.Logger) error {
	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := ping(ctx); err != nil {
			log.Warn("database not ready", "attempt", attempt, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
}

// queryTracer logs statements at debug level. Arguments are dropped because
// they include password hashes.
func queryTracer(log *slog.Logger) *tracelog.TraceLog {
	return &tracelog.TraceLog{
		LogLevel: tracelog.LogLevelDebug,
		Logger: tracelog.LoggerFunc(func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
			attrs := make([]any, 0, 2*len(data))
			for k, v := range data {
				if k == "args" {
					continue
				}
				attrs = append(attrs, k, v)
			}
			log.Log(ctx, traceLevel(level), msg, attrs...)
		}),
	}
}

func traceLevel(level tracelog.LogLevel) slog.Level {
	switch {
	case level >= tracelog.LogLevelDebug:
		return slog.LevelDebug
	case level == tracelog.LogLevelInfo:
		return slog.LevelInfo
	case level == tracelog.LogLevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// Migrate brings the schema up to the newest embedded migration.
func (p *Postgres) Migrate() error {
	m, err := NewMigrator(p.dsn)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			p.log.Warn("close migrator", "error", err)
		}
	}()

	if err := m.Up(); err != nil {
		return err
	}
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	p.log.Info("schema migrated", "version", version, "dirty", dirty)
	return nil
}

// Health pings the server.
func (p *Postgres) Health(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}

func (p *Postgres) Close() {
	if p.Pool == nil {
		return
	}
	p.Pool.Close()
	p.log.Info("postgres pool closed")
}
