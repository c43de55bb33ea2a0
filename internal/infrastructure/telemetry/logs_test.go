package telemetry

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

type exportedRecord struct {
	body     string
	severity string
}

type memoryExporter struct {
	mu      sync.Mutex
	records []exportedRecord
}

func (e *memoryExporter) Export(_ context.Context, records []sdklog.Record) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range records {
		e.records = append(e.records, exportedRecord{
			body:     records[i].Body().AsString(),
			severity: records[i].SeverityText(),
		})
	}
	return nil
}

func (e *memoryExporter) Shutdown(context.Context) error   { return nil }
func (e *memoryExporter) ForceFlush(context.Context) error { return nil }

func (e *memoryExporter) bodies() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.records))
	for i, r := range e.records {
		out[i] = r.body
	}
	return out
}

func TestNewLoggerProvider_Disabled(t *testing.T) {
	ctx := context.Background()

	for _, cfg := range []Config{
		{Enabled: false, ExportLogs: true},
		{Enabled: true, ExportLogs: false},
	} {
		lp, err := NewLoggerProvider(ctx, cfg, zaptest.NewLogger(t))
		require.NoError(t, err)
		assert.False(t, lp.IsEnabled())
		assert.NoError(t, lp.ForceFlush(ctx))
		assert.NoError(t, lp.Shutdown(ctx))

		core := NewZapOTELCore(lp, "forms-engine", zapcore.InfoLevel)
		assert.False(t, core.Enabled(zapcore.ErrorLevel))
	}
}

func TestNewZapOTELCore_NilProvider(t *testing.T) {
	core := NewZapOTELCore(nil, "forms-engine", zapcore.InfoLevel)
	assert.False(t, core.Enabled(zapcore.ErrorLevel))
}

func TestNewZapOTELCore_ExportsAboveLevel(t *testing.T) {
	exporter := &memoryExporter{}
	lp, err := newLoggerProvider(
		Config{Enabled: true, ExportLogs: true, ServiceName: "forms-engine"},
		sdklog.NewSimpleProcessor(exporter),
		zaptest.NewLogger(t),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = lp.Shutdown(context.Background()) })

	logger := zap.New(NewZapOTELCore(lp, "forms-engine", zapcore.WarnLevel)).
		With(zap.String("kind", "kitchen"))

	logger.Info("below threshold")
	logger.Warn("unknown section requested")
	logger.Error("extraction failed")

	assert.Equal(t, []string{"unknown section requested", "extraction failed"}, exporter.bodies())
}

func TestLevelFilterCore(t *testing.T) {
	core := &levelFilterCore{Core: zapcore.NewNopCore(), minLevel: zapcore.DebugLevel}
	// nop core reports disabled regardless of the filter
	assert.False(t, core.Enabled(zapcore.ErrorLevel))

	with := core.With([]zapcore.Field{zap.String("k", "v")})
	filtered, ok := with.(*levelFilterCore)
	require.True(t, ok)
	assert.Equal(t, zapcore.DebugLevel, filtered.minLevel)
}
