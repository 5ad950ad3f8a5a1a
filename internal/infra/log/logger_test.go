package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"dealfinder/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "staging"
	cfg.Env.ServiceName = "dealfinder"
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestNewLogger_TagsServiceAndEnv(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, testConfig("info", false))
	require.NoError(t, err)

	logger.Info("promotion created")
	logger.Debug("hidden")

	assert.Contains(t, buf.String(), `"service":"dealfinder"`)
	assert.Contains(t, buf.String(), `"env":"staging"`)
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewLogger_PrettyUsesText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, testConfig("debug", true))
	require.NoError(t, err)

	logger.Debug("click recorded")

	assert.Contains(t, buf.String(), "msg=\"click recorded\"")
	assert.Contains(t, buf.String(), "env=staging")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "", want: slog.LevelInfo},
		{in: " DEBUG ", want: slog.LevelDebug},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
