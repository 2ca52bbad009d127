package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func InitPostgres(ctx context.Context, cfg Config, tracer pgx.QueryTracer) (*pgxpool.Pool, error) {
	poolConfig, err := newPoolConfig(cfg, tracer)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pingWithAttempts(ctx, cfg.PingAttempts, pool.Ping); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func newPoolConfig(cfg Config, tracer pgx.QueryTracer) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse pool config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	// every session is read-only on the server side
	poolConfig.ConnConfig.RuntimeParams["default_transaction_read_only"] = "on"
	if tracer != nil {
		poolConfig.ConnConfig.Tracer = tracer
	}

	return poolConfig, nil
}

func pingWithAttempts(ctx context.Context, attempts int, ping func(context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var pingErr error
	for i := 0; i < attempts; i++ {
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		pingErr = ping(pingCtx)
		pingCancel()

		if pingErr == nil {
			return nil
		}

		slog.Warn("failed to ping database",
			slog.Int("attempt", i+1),
			slog.String("error", pingErr.Error()),
		)

		if i < attempts-1 {
			time.Sleep(500 * time.Millisecond)
		}
	}

	return fmt.Errorf("failed to ping database: %w", pingErr)
}
