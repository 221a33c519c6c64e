//go:build notrace

package tagsoup

import (
	"context"
	"log/slog"
	"time"
)

// No-op implementations when built with -tags notrace

var nullLogger = slog.New(slog.DiscardHandler)

type Span interface {
	End()
}

type noOpSpan struct{}

func (s *noOpSpan) End() {}

type SpanInfo struct {
	ID       string
	ParentID string
	Name     string
	Start    time.Time
}

func TracingEnabled() bool {
	return false
}

func SetTracingEnabled(enabled bool) {}

func WithTraceLogger(ctx context.Context, tlog *slog.Logger) context.Context {
	return ctx
}

func WithSpan(ctx context.Context, name string) (context.Context, *SpanInfo) {
	return ctx, nil
}

func StartSpan(ctx context.Context, spanName string) (context.Context, Span) {
	return ctx, &noOpSpan{}
}

func TraceEvent(ctx context.Context, msg string, attrs ...slog.Attr) {}

func getTraceLogFromContext(ctx context.Context) *slog.Logger {
	return nullLogger
}
