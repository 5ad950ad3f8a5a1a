package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"dealfinder/config"
	"dealfinder/internal/domain/lifecycle"
	"dealfinder/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary connection and any configured read replicas. Statement
// logging goes through sqlLogger and the pool is watched for connection waits
// between start and stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres")
	}
	// Multi-step writes use TransactionManager.Execute, so single statements skip the implicit transaction.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newSQLLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get postgres sql.DB")
	}

	monitor := newPoolMonitor(sqlDB, params.Logger, params.Config.Database)
	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping postgres")
			}
			params.Logger.InfoContext(ctx, "Postgres connected",
				slog.Int("replicas", len(params.Config.Postgres.Replicas)),
				slog.Int("maxOpenConns", sqlDB.Stats().MaxOpenConnections),
			)

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

type poolStats interface {
	Stats() sql.DBStats
}

// poolMonitor reports connection waits seen since its previous tick.
type poolMonitor struct {
	pool      poolStats
	logger    *slog.Logger
	interval  time.Duration
	warnAfter time.Duration
	last      sql.DBStats
}

func newPoolMonitor(pool poolStats, logger *slog.Logger, cfg *config.DatabaseConfig) *poolMonitor {
	if cfg == nil {
		cfg = &config.DatabaseConfig{}
	}

	return &poolMonitor{
		pool:      pool,
		logger:    logger,
		interval:  cfg.PoolMonitorInterval,
		warnAfter: cfg.PoolWaitWarnThreshold,
	}
}

func (m *poolMonitor) run(ctx context.Context) {
	if m.logger == nil || m.pool == nil || m.interval <= 0 {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.last = m.pool.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.check(ctx)
		}
	}
}

// check logs at warn level once the waits accumulated over the last interval reach warnAfter.
func (m *poolMonitor) check(ctx context.Context) {
	cur := m.pool.Stats()
	waits := cur.WaitCount - m.last.WaitCount
	waited := cur.WaitDuration - m.last.WaitDuration
	m.last = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if m.warnAfter > 0 && waited >= m.warnAfter {
		level = slog.LevelWarn
	}
	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
