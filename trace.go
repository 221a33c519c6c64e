//go:build !notrace

package tagsoup

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type traceLoggerKey struct{}
type spanIDKey struct{}

// the null logger is a logger that does nothing
var nullLogger = slog.New(slog.DiscardHandler)

var tracingEnabled atomic.Bool

func init() {
	tracingEnabled.Store(true)
}

// Span is the handle returned by StartSpan
type Span interface {
	End()
}

// SpanInfo holds information about a tracing span
type SpanInfo struct {
	ID       string
	ParentID string
	Name     string
	Start    time.Time
}

type logSpan struct {
	ctx  context.Context
	info *SpanInfo
	tlog *slog.Logger
}

func (s *logSpan) End() {
	s.tlog.LogAttrs(s.ctx, slog.LevelDebug, "END",
		slog.String("span_id", s.info.ID),
		slog.String("span_name", s.info.Name),
		slog.Duration("elapsed", time.Since(s.info.Start)),
	)
}

// TracingEnabled reports whether trace output is currently produced
func TracingEnabled() bool {
	return tracingEnabled.Load()
}

// SetTracingEnabled turns trace output on or off at runtime
func SetTracingEnabled(enabled bool) {
	tracingEnabled.Store(enabled)
}

// WithTraceLogger returns a context that carries tlog. The parser writes
// debug level events about tree construction to it: insertion mode
// switches, synthesized elements, discarded close tags, and elements
// left open at the end of the input.
func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	// If the context already has a trace logger, return the context as is
	if _, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		return ctx
	}

	return context.WithValue(ctx, traceLoggerKey{}, tlog)
}

// WithSpan creates a new span context. The span becomes the parent of
// spans created from the returned context.
func WithSpan(ctx context.Context, name string) (context.Context, *SpanInfo) {
	info := &SpanInfo{
		ID:    uuid.NewString(),
		Name:  name,
		Start: time.Now(),
	}
	if parent, ok := ctx.Value(spanIDKey{}).(string); ok {
		info.ParentID = parent
	}
	return context.WithValue(ctx, spanIDKey{}, info.ID), info
}

// StartSpan creates a span and logs its start. Call End on the result
// to log its end.
func StartSpan(ctx context.Context, spanName string) (context.Context, Span) {
	ctx, info := WithSpan(ctx, spanName)
	tlog := getTraceLogFromContext(ctx)
	tlog.LogAttrs(ctx, slog.LevelDebug, "START",
		slog.String("span_id", info.ID),
		slog.String("parent_span_id", info.ParentID),
		slog.String("span_name", info.Name),
	)
	return ctx, &logSpan{ctx: ctx, info: info, tlog: tlog}
}

// TraceEvent logs a debug level event to the trace logger in ctx
func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {
	getTraceLogFromContext(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	if !tracingEnabled.Load() {
		return nullLogger
	}

	if tlog, ok := ctx.Value(traceLoggerKey{}).(*slog.Logger); ok {
		// Retrieve the function name of the caller for tracing
		pc, _, _, ok := runtime.Caller(2)
		if ok {
			fn := runtime.FuncForPC(pc)
			if fn != nil {
				tlog = tlog.With(slog.String("fn", fn.Name()))
			}
		}

		return tlog
	}

	return nullLogger
}
