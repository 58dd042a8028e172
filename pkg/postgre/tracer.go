package postgre

import (
	"context"
	"strings"
	"time"

	"personal-assistant/pkg/log"
	"personal-assistant/pkg/metrics"

	"github.com/jackc/pgx/v5"
)

const (
	defaultSlowThreshold = 100 * time.Millisecond
	maxLoggedSQL         = 200
)

type traceKey struct{}

type traceStart struct {
	at  time.Time
	sql string
}

// SlowQueryTracer records query latency and logs queries slower than the threshold.
type SlowQueryTracer struct {
	l         log.Logger
	threshold time.Duration
}

func NewSlowQueryTracer(l log.Logger, threshold time.Duration) *SlowQueryTracer {
	if threshold <= 0 {
		threshold = defaultSlowThreshold
	}
	return &SlowQueryTracer{l: l, threshold: threshold}
}

func (t *SlowQueryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, traceStart{at: time.Now(), sql: data.SQL})
}

func (t *SlowQueryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	start, ok := ctx.Value(traceKey{}).(traceStart)
	if !ok {
		return
	}

	took := time.Since(start.at)
	metrics.RecordDBQueryDuration(operation(start.sql), took)

	if took <= t.threshold {
		return
	}

	metrics.IncrementSlowQuery()
	sql := start.sql
	if len(sql) > maxLoggedSQL {
		sql = sql[:maxLoggedSQL] + "..."
	}
	t.l.Warn(ctx, "slow query", "sql", sql, "took", took.String(), "command_tag", data.CommandTag.String())
}

// operation returns the leading SQL keyword, e.g. "SELECT".
func operation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "UNKNOWN"
	}
	return strings.ToUpper(fields[0])
}
