package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"courtcrowd/config"
	deliverycontext "courtcrowd/internal/delivery/context"
	"courtcrowd/internal/errors"
	"courtcrowd/internal/infra/metrics"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Presence writes sit on the check-in path, so anything slower than this is reported.
const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM logs to the request-scoped slog logger and counts failed and
// slow queries.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

// Trace reports failed queries, then slow ones, then every query in debug mode.
// A missing row is an expected outcome of FindOpen and ActiveCheckIn and is not a failure.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, gorm.ErrRecordNotFound)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold

	switch {
	case failed:
		metrics.DBQueryIssues.WithLabelValues("failed").Inc()
		if l.level >= logger.Error {
			attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
			l.from(ctx).LogAttrs(ctx, slog.LevelError, "GORM query failed", attrs...)
		}
	case slow:
		metrics.DBQueryIssues.WithLabelValues("slow").Inc()
		if l.level >= logger.Warn {
			attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("slowThreshold", l.slowThreshold))
			l.from(ctx).LogAttrs(ctx, slog.LevelWarn, "GORM slow query", attrs...)
		}
	case l.level >= logger.Info:
		l.from(ctx).LogAttrs(ctx, slog.LevelInfo, "GORM query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}
