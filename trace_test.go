package tagsoup

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestWithTraceLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := WithTraceLogger(context.Background(), logger)

	tlog := getTraceLogFromContext(ctx)
	require.NotNil(t, tlog)

	tlog.Debug("test message")

	output := buf.String()
	if TracingEnabled() {
		require.Contains(t, output, "test message")
	} else {
		require.Empty(t, output)
	}
}

func TestWithTraceLoggerKeepsExisting(t *testing.T) {
	if !TracingEnabled() {
		t.Skip("Tracing disabled - skipping trace logger test")
		return
	}

	var first, second bytes.Buffer
	ctx := WithTraceLogger(context.Background(), slog.New(slog.NewJSONHandler(&first, &slog.HandlerOptions{Level: slog.LevelDebug})))
	ctx = WithTraceLogger(ctx, slog.New(slog.NewJSONHandler(&second, &slog.HandlerOptions{Level: slog.LevelDebug})))

	TraceEvent(ctx, "hello")
	require.Contains(t, first.String(), "hello")
	require.Empty(t, second.String())
}

func TestWithSpan(t *testing.T) {
	if !TracingEnabled() {
		t.Skip("Tracing disabled - skipping span test")
		return
	}

	ctx := context.Background()

	ctx, span := WithSpan(ctx, "test_operation")

	require.NotEmpty(t, span.ID)
	_, err := uuid.Parse(span.ID)
	require.NoError(t, err, `span ID should be a uuid`)
	require.Equal(t, "test_operation", span.Name)
	require.Empty(t, span.ParentID)
	require.False(t, span.Start.IsZero())

	_, span2 := WithSpan(ctx, "nested_operation")

	require.NotEmpty(t, span2.ID)
	require.Equal(t, "nested_operation", span2.Name)
	require.Equal(t, span.ID, span2.ParentID)
	require.NotEqual(t, span.ID, span2.ID)
}

func TestStartSpan(t *testing.T) {
	if !TracingEnabled() {
		t.Skip("Tracing disabled - skipping StartSpan test")
		return
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := WithTraceLogger(context.Background(), logger)

	_, span := StartSpan(ctx, "test_function")

	time.Sleep(time.Millisecond)

	span.End()

	output := buf.String()
	require.Contains(t, output, "START")
	require.Contains(t, output, "END")
	require.Contains(t, output, "span_id")
	require.Contains(t, output, "span_name")
	require.Contains(t, output, "test_function")
	require.Contains(t, output, "elapsed")
}

func TestTraceEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := WithTraceLogger(context.Background(), logger)

	TraceEvent(ctx, "processing data",
		slog.String("data_type", "markup"),
		slog.Int("size", 1024),
	)

	output := buf.String()
	if TracingEnabled() {
		require.Contains(t, output, "processing data")
		require.Contains(t, output, "data_type")
		require.Contains(t, output, "markup")
		require.Contains(t, output, "1024")
	} else {
		require.Empty(t, output)
	}
}

func TestSetTracingEnabled(t *testing.T) {
	if !TracingEnabled() {
		t.Skip("Tracing disabled - skipping toggle test")
		return
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := WithTraceLogger(context.Background(), logger)

	SetTracingEnabled(false)
	TraceEvent(ctx, "silenced")
	SetTracingEnabled(true)
	TraceEvent(ctx, "heard")

	require.NotContains(t, buf.String(), "silenced")
	require.Contains(t, buf.String(), "heard")
}

func TestNullLogger(t *testing.T) {
	ctx := context.Background()

	tlog := getTraceLogFromContext(ctx)
	require.NotNil(t, tlog)

	require.NotPanics(t, func() {
		tlog.Debug("this should not output anything")
		TraceEvent(ctx, "test event")
		Parse(ctx, "<p>x</em>")
	})
}
