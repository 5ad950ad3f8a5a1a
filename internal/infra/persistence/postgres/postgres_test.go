package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"dealfinder/config"

	"github.com/stretchr/testify/assert"
)

type stubPool struct {
	stats sql.DBStats
}

func (p *stubPool) Stats() sql.DBStats { return p.stats }

func TestPoolMonitor_Check(t *testing.T) {
	tests := []struct {
		name    string
		next    sql.DBStats
		wantLog string
	}{
		{
			name: "no new waits",
			next: sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
		},
		{
			name:    "short waits stay at debug",
			next:    sql.DBStats{WaitCount: 5, WaitDuration: time.Second + 10*time.Millisecond},
			wantLog: `"level":"DEBUG"`,
		},
		{
			name:    "long waits warn",
			next:    sql.DBStats{WaitCount: 4, WaitDuration: time.Second + 80*time.Millisecond, MaxOpenConnections: 50},
			wantLog: `"level":"WARN"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			pool := &stubPool{}
			m := newPoolMonitor(pool, newBufferLogger(&buf), &config.DatabaseConfig{
				PoolMonitorInterval:   time.Second,
				PoolWaitWarnThreshold: 50 * time.Millisecond,
			})
			m.last = sql.DBStats{WaitCount: 3, WaitDuration: time.Second}
			pool.stats = tt.next

			m.check(context.Background())

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), `"msg":"Postgres pool wait"`)
			assert.Equal(t, tt.next, m.last)
		})
	}
}

func TestPoolMonitor_RunWithoutIntervalReturns(t *testing.T) {
	m := newPoolMonitor(&stubPool{}, newBufferLogger(&bytes.Buffer{}), nil)

	done := make(chan struct{})
	go func() {
		m.run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run blocked without an interval")
	}
}
