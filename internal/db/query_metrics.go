package db

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/fr0stylo/confhub/internal/db/queries"
	"github.com/fr0stylo/confhub/internal/observability"
)

const latencyWindow = 256

// QueryLatency summarises the recent executions of one named query.
type QueryLatency struct {
	Name   string
	Count  int
	Errors int
	P50    time.Duration
	P95    time.Duration
	Max    time.Duration
}

type queryNameKey struct{}

// withQueryName labels statements that carry no generated "-- name:" header.
func withQueryName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, queryNameKey{}, name)
}

func resolveQueryName(ctx context.Context, query string) string {
	if name, ok := ctx.Value(queryNameKey{}).(string); ok && name != "" {
		return name
	}
	header, _, _ := strings.Cut(strings.TrimSpace(query), "\n")
	rest, ok := strings.CutPrefix(strings.TrimSpace(header), "-- name:")
	if !ok {
		return "unknown"
	}
	if fields := strings.Fields(rest); len(fields) > 0 {
		return fields[0]
	}
	return "unknown"
}

type queryWindow struct {
	durations []time.Duration
	next      int
	errors    int
}

func (w *queryWindow) add(d time.Duration, failed bool) {
	if failed {
		w.errors++
	}
	if len(w.durations) < latencyWindow {
		w.durations = append(w.durations, d)
		return
	}
	w.durations[w.next] = d
	w.next = (w.next + 1) % latencyWindow
}

// queryRecorder keeps a ring of recent latencies per query for the shutdown
// report and mirrors every sample into an otel histogram.
type queryRecorder struct {
	mu        sync.Mutex
	windows   map[string]*queryWindow
	histogram metric.Float64Histogram
}

func newQueryRecorder() *queryRecorder {
	meter := otel.Meter("github.com/fr0stylo/confhub/internal/db")
	histogram, _ := meter.Float64Histogram("confhub.db.query.duration", metric.WithUnit("s"))
	return &queryRecorder{windows: make(map[string]*queryWindow), histogram: histogram}
}

func (r *queryRecorder) record(ctx context.Context, name, operation string, elapsed time.Duration, err error) {
	if r.histogram != nil {
		r.histogram.Record(ctx, elapsed.Seconds(), metric.WithAttributes(
			attribute.String("query", name),
			attribute.String("operation", operation),
			attribute.Bool("error", err != nil),
		))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.windows[name]
	if !ok {
		w = &queryWindow{}
		r.windows[name] = w
	}
	w.add(elapsed, err != nil && !errors.Is(err, sql.ErrNoRows))
}

// snapshot orders queries slowest p95 first.
func (r *queryRecorder) snapshot() []QueryLatency {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := make([]QueryLatency, 0, len(r.windows))
	for name, w := range r.windows {
		n := len(w.durations)
		if n == 0 {
			continue
		}
		sorted := append([]time.Duration(nil), w.durations...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
		stats = append(stats, QueryLatency{
			Name:   name,
			Count:  n,
			Errors: w.errors,
			P50:    sorted[(n-1)/2],
			P95:    sorted[(n-1)*95/100],
			Max:    sorted[n-1],
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].P95 != stats[j].P95 {
			return stats[i].P95 > stats[j].P95
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}

// timedConn traces and times every statement sent through the generated
// queries and the hand-written finder.
type timedConn struct {
	inner    queries.DBTX
	recorder *queryRecorder
}

var _ queries.DBTX = (*timedConn)(nil)

func timed[T any](ctx context.Context, c *timedConn, query, operation string, run func(context.Context) (T, error)) (T, error) {
	name := resolveQueryName(ctx, query)
	ctx, span := observability.StartDBSpan(ctx, name, operation)
	defer span.End()

	start := time.Now()
	out, err := run(ctx)
	c.recorder.record(ctx, name, operation, time.Since(start), err)
	if !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
	}
	return out, err
}

func (c *timedConn) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return timed(ctx, c, query, "exec", func(ctx context.Context) (sql.Result, error) {
		return c.inner.ExecContext(ctx, query, args...)
	})
}

func (c *timedConn) PrepareContext(ctx context.Context, query string) (*sql.Stmt, error) {
	return timed(ctx, c, query, "prepare", func(ctx context.Context) (*sql.Stmt, error) {
		return c.inner.PrepareContext(ctx, query)
	})
}

func (c *timedConn) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return timed(ctx, c, query, "query", func(ctx context.Context) (*sql.Rows, error) {
		return c.inner.QueryContext(ctx, query, args...)
	})
}

// QueryRowContext surfaces only errors the driver reports before Scan.
func (c *timedConn) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	row, _ := timed(ctx, c, query, "query_row", func(ctx context.Context) (*sql.Row, error) {
		row := c.inner.QueryRowContext(ctx, query, args...)
		return row, row.Err()
	})
	return row
}
