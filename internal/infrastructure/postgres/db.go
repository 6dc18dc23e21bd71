package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"pennyledger/internal/domain"
)

// GatewayConfig holds connection settings for the gateway.
type GatewayConfig struct {
	DatabaseURL    string
	MaxConns       int
	MinConns       int
	ConnectTimeout time.Duration
}

// Gateway owns the process-wide connection pool to the backing store.
// The pool is established lazily on the first Acquire and reused for
// the process lifetime; concurrent first calls cannot double-initialize.
// A failed connect is reported and retried on the next Acquire.
type Gateway struct {
	cfg GatewayConfig

	mu   sync.Mutex
	pool *pgxpool.Pool
}

// NewGateway creates a new Gateway. No connection is made until the
// first Acquire.
func NewGateway(cfg GatewayConfig) *Gateway {
	return &Gateway{cfg: cfg}
}

// Acquire returns the shared pool, dialing the store on first use.
// Connect failures surface as domain.ErrStoreUnavailable.
func (g *Gateway) Acquire(ctx context.Context) (*pgxpool.Pool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pool != nil {
		return g.pool, nil
	}

	pool, err := g.connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	g.pool = pool

	return pool, nil
}

// Ping verifies the store is reachable, connecting first if needed.
func (g *Gateway) Ping(ctx context.Context) error {
	pool, err := g.Acquire(ctx)
	if err != nil {
		return err
	}

	return pool.Ping(ctx)
}

// Close releases the pool if one was established.
func (g *Gateway) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pool != nil {
		g.pool.Close()
		g.pool = nil
	}
}

func (g *Gateway) connect(ctx context.Context) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(g.cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	if g.cfg.MaxConns > 0 {
		config.MaxConns = int32(g.cfg.MaxConns)
	}
	if g.cfg.MinConns > 0 {
		config.MinConns = int32(g.cfg.MinConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// The store may still be coming up; ping with exponential backoff
	// until it answers or the connect window elapses.
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = g.cfg.ConnectTimeout

	err = backoff.Retry(func() error {
		if err := pool.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("store not ready, retrying")
			return err
		}
		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
