package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"dealfinder/config"
	deliverycontext "dealfinder/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func slowConfig(threshold time.Duration) *config.Config {
	return &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: threshold}}
}

func TestSQLLogger_TraceUsesRequestScope(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newSQLLogger(newBufferLogger(&base), &config.Config{})

	ctx := deliverycontext.WithScope(context.Background(),
		deliverycontext.NewScope("req-1", newBufferLogger(&scoped)))

	l.Trace(ctx, time.Now(), sqlFn(`SELECT * FROM "promotions" WHERE id = 'p-1'`, 1), errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), `"msg":"sql statement failed"`)
	assert.Contains(t, scoped.String(), `"request_id":"req-1"`)
	assert.Contains(t, scoped.String(), `"table":"promotions"`)
}

func TestSQLLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newSQLLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn(`SELECT * FROM "users"`, 0), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestSQLLogger_SlowStatement(t *testing.T) {
	var buf bytes.Buffer
	l := newSQLLogger(newBufferLogger(&buf), slowConfig(100*time.Millisecond))

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn(`UPDATE "businesses" SET impression_count = impression_count + 1`, 1), nil)

	assert.Contains(t, buf.String(), `"msg":"slow sql statement"`)
	assert.Contains(t, buf.String(), `"table":"businesses"`)
	assert.Contains(t, buf.String(), `"threshold":100000000`)
}

func TestSQLLogger_ZeroThresholdDisablesSlowLog(t *testing.T) {
	var buf bytes.Buffer
	l := newSQLLogger(newBufferLogger(&buf), slowConfig(0))

	l.Trace(context.Background(), time.Now().Add(-time.Hour), sqlFn("SELECT 1", 1), nil)

	assert.Empty(t, buf.String())
}

func TestSQLLogger_DebugLogsEveryStatement(t *testing.T) {
	var buf bytes.Buffer
	cfg := slowConfig(time.Second)
	cfg.Env.Debug = true
	l := newSQLLogger(newBufferLogger(&buf), cfg)

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 1), nil)

	assert.Contains(t, buf.String(), `"msg":"sql statement"`)
}

func TestSQLLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := newSQLLogger(newBufferLogger(&buf), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 1), errors.New("boom"))
	l.Error(context.Background(), "dropped %d", 1)

	assert.Empty(t, buf.String())
}

func TestSQLLogger_ParamsFilter(t *testing.T) {
	l := newSQLLogger(nil, nil)

	tests := []struct {
		name   string
		stmt   string
		params []any
		want   []any
	}{
		{
			name:   "users insert keeps placeholders",
			stmt:   `INSERT INTO "users" ("email","password_hash") VALUES ($1,$2)`,
			params: []any{"owner@example.com", "$2a$10$hash"},
			want:   nil,
		},
		{
			name:   "join on users",
			stmt:   `SELECT * FROM "businesses" JOIN "users" ON users.id = businesses.owner_id WHERE users.email = $1`,
			params: []any{"owner@example.com"},
			want:   nil,
		},
		{
			name:   "promotions keep values",
			stmt:   `SELECT * FROM "promotions" WHERE "promotions"."id" = $1`,
			params: []any{"p-1"},
			want:   []any{"p-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, params := l.ParamsFilter(context.Background(), tt.stmt, tt.params...)

			assert.Equal(t, tt.stmt, stmt)
			assert.Equal(t, tt.want, params)
		})
	}
}
