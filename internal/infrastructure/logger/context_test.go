package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func contextWithValidSpan(t *testing.T) context.Context {
	t.Helper()
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	return trace.ContextWithSpanContext(context.Background(), sc)
}

func fieldMap(entry observer.LoggedEntry) map[string]any {
	return entry.ContextMap()
}

func TestWithContext(t *testing.T) {
	logger := zap.NewExample()
	ctx := WithContext(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContext_Missing(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))

	ctx := context.WithValue(context.Background(), LoggerKey, "not a logger")
	assert.NotNil(t, FromContext(ctx))
}

func TestWithRequestID(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)

	ctx, enriched := WithRequestID(context.Background(), zap.New(core), "req-42")
	assert.Equal(t, "req-42", GetRequestID(ctx))
	assert.Same(t, enriched, FromContext(ctx))

	enriched.Info("rendered")
	require.Equal(t, 1, recorded.Len())
	assert.Equal(t, "req-42", fieldMap(recorded.All()[0])["request_id"])
}

func TestOperationAndKind(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetOperation(ctx))
	assert.Empty(t, GetSubmissionKind(ctx))

	ctx = WithOperation(ctx, "render")
	ctx = WithSubmissionKind(ctx, "bedroom")
	assert.Equal(t, "render", GetOperation(ctx))
	assert.Equal(t, "bedroom", GetSubmissionKind(ctx))
}

func TestTraceCorrelation(t *testing.T) {
	t.Run("no span", func(t *testing.T) {
		ctx := context.Background()
		assert.Empty(t, GetTraceID(ctx))
		assert.Empty(t, GetSpanID(ctx))

		logger := zap.NewNop()
		assert.Same(t, logger, WithTraceContext(ctx, logger))
	})

	t.Run("noop span is not valid", func(t *testing.T) {
		ctx, span := noop.NewTracerProvider().Tracer("test").Start(context.Background(), "op")
		defer span.End()
		assert.Empty(t, GetTraceID(ctx))
	})

	t.Run("valid span", func(t *testing.T) {
		ctx := contextWithValidSpan(t)
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", GetTraceID(ctx))
		assert.Equal(t, "00f067aa0ba902b7", GetSpanID(ctx))

		core, recorded := observer.New(zapcore.InfoLevel)
		WithTraceContext(ctx, zap.New(core)).Info("traced")
		fields := fieldMap(recorded.All()[0])
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
		assert.Equal(t, "00f067aa0ba902b7", fields["span_id"])
	})
}

func TestContextLogger_EnrichesEntries(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)

	ctx := contextWithValidSpan(t)
	ctx, _ = WithRequestID(ctx, zap.New(core), "req-7")
	ctx = WithOperation(ctx, "classify")
	ctx = WithSubmissionKind(ctx, "kitchen")

	L(ctx).Info("classified", zap.String("rule", "kitchen_signals"))

	require.Equal(t, 1, recorded.Len())
	fields := fieldMap(recorded.All()[0])
	assert.Equal(t, "req-7", fields["request_id"])
	assert.Equal(t, "classify", fields["operation"])
	assert.Equal(t, "kitchen", fields["submission_kind"])
	assert.Equal(t, "kitchen_signals", fields["rule"])
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
}

func TestContextLogger_Levels(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	cl := WithLogger(context.Background(), zap.New(core))

	cl.Debug("d")
	cl.Info("i")
	cl.Warn("w")
	cl.Error("e")

	var levels []zapcore.Level
	for _, e := range recorded.All() {
		levels = append(levels, e.Level)
	}
	assert.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}

func TestContextLogger_WithAndZap(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := WithSubmissionKind(context.Background(), "remedial")

	cl := WithLogger(ctx, zap.New(core)).With(zap.String("section", "Remedial Actions"))
	cl.Zap().Info("extracted")

	fields := fieldMap(recorded.All()[0])
	assert.Equal(t, "Remedial Actions", fields["section"])
	assert.Equal(t, "remedial", fields["submission_kind"])
}

func TestContextLogger_NilLogger(t *testing.T) {
	cl := WithLogger(context.Background(), nil)
	assert.NotPanics(t, func() {
		cl.Info("nothing")
		cl.With(zap.Int("n", 1)).Warn("still nothing")
	})
}
