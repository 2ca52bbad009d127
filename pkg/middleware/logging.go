package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type queryStartKey struct{}

type queryStart struct {
	at  time.Time
	sql string
}

// QueryLogger is a pgx.QueryTracer that logs every statement through slog.
type QueryLogger struct {
	logger *slog.Logger
}

func NewQueryLogger(logger *slog.Logger) *QueryLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryLogger{logger: logger}
}

func (l *QueryLogger) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, queryStart{
		at:  time.Now(),
		sql: compactSQL(data.SQL),
	})
}

func (l *QueryLogger) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(queryStartKey{}).(queryStart)
	if !ok {
		return
	}

	duration := time.Since(start.at)
	logMsg := fmt.Sprintf("query %s in %s", data.CommandTag.String(), duration.String())

	if data.Err != nil {
		l.logger.ErrorContext(ctx, logMsg,
			"sql", start.sql,
			"error", data.Err,
		)
		return
	}

	l.logger.DebugContext(ctx, logMsg,
		"sql", start.sql,
		"rows", data.CommandTag.RowsAffected(),
	)
}

func compactSQL(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}
