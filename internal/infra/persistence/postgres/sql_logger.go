package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"dealfinder/config"
	deliverycontext "dealfinder/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// statementTables captures the relation names a statement reads from or writes to.
var statementTables = regexp.MustCompile(`(?i)\b(?:FROM|INTO|UPDATE|JOIN)\s+"?(\w+)"?`)

// Bound values of statements touching these tables stay out of the log.
// Their rows hold password hashes and contact emails.
var redactedTables = map[string]struct{}{
	"users": {},
}

// sqlLogger routes GORM statement traces into slog. Each entry is tagged with
// the table it touches and inherits request_id and actor_id from the request scope.
type sqlLogger struct {
	base  *slog.Logger
	level logger.LogLevel
	slow  time.Duration
}

var (
	_ logger.Interface  = (*sqlLogger)(nil)
	_ gorm.ParamsFilter = (*sqlLogger)(nil)
)

func newSQLLogger(base *slog.Logger, cfg *config.Config) *sqlLogger {
	l := &sqlLogger{base: base, level: logger.Warn}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.level = logger.Info
	}
	if cfg.Database != nil {
		l.slow = cfg.Database.SlowQueryThreshold
	}

	return l
}

func (l *sqlLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *sqlLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *sqlLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *sqlLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *sqlLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.base == nil || l.level < threshold {
		return
	}
	deliverycontext.GetLoggerOrDefault(ctx, l.base).LogAttrs(ctx, level, "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace logs failed statements, statements slower than the configured
// threshold and, in debug mode, every statement.
func (l *sqlLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logStatement(ctx, slog.LevelError, "sql statement failed", fc, elapsed, slog.String("error", err.Error()))
	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		l.logStatement(ctx, slog.LevelWarn, "slow sql statement", fc, elapsed, slog.Duration("threshold", l.slow))
	case l.level >= logger.Info:
		l.logStatement(ctx, slog.LevelInfo, "sql statement", fc, elapsed)
	}
}

func (l *sqlLogger) logStatement(ctx context.Context, level slog.Level, msg string, fc func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	stmt, rows := fc()
	tables := tablesOf(stmt)

	attrs := make([]slog.Attr, 0, 4+len(extra))
	if len(tables) > 0 {
		attrs = append(attrs, slog.String("table", tables[0]))
	}
	attrs = append(attrs,
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", stmt),
	)
	attrs = append(attrs, extra...)

	deliverycontext.GetLoggerOrDefault(ctx, l.base).LogAttrs(ctx, level, msg, attrs...)
}

// ParamsFilter drops the bound values of statements on redacted tables so the
// rendered SQL keeps its $n placeholders.
func (l *sqlLogger) ParamsFilter(_ context.Context, stmt string, params ...any) (string, []any) {
	for _, table := range tablesOf(stmt) {
		if _, ok := redactedTables[table]; ok {
			return stmt, nil
		}
	}

	return stmt, params
}

func tablesOf(stmt string) []string {
	matches := statementTables.FindAllStringSubmatch(stmt, -1)
	tables := make([]string, 0, len(matches))
	for _, m := range matches {
		tables = append(tables, strings.ToLower(m[1]))
	}

	return tables
}
