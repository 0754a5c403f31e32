package tracing

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/Kargones/travis/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

var hex32 = regexp.MustCompile(`^[0-9a-f]{32}$`)

func TestGenerateTraceID(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		id := GenerateTraceID()
		assert.Regexp(t, hex32, id)
		assert.False(t, seen[id], "trace ID не должен повторяться")
		seen[id] = true
	}
}

func TestFallbackTraceID(t *testing.T) {
	a, b := fallbackTraceID(), fallbackTraceID()
	assert.Regexp(t, hex32, a)
	assert.NotEqual(t, a, b)
}

func TestTraceIDContext(t *testing.T) {
	ctx := WithTraceID(context.Background(), "abc")
	assert.Equal(t, "abc", TraceIDFromContext(ctx))
	assert.Empty(t, TraceIDFromContext(context.Background()))
	//nolint:staticcheck // проверка nil context
	assert.Empty(t, TraceIDFromContext(nil))
}

func TestContextWithOTelTraceID(t *testing.T) {
	id := GenerateTraceID()
	ctx := ContextWithOTelTraceID(context.Background(), id)

	sc := trace.SpanContextFromContext(ctx)
	require.True(t, sc.IsValid())
	assert.Equal(t, id, sc.TraceID().String())
	assert.True(t, sc.IsRemote())

	assert.Equal(t, context.Background(), ContextWithOTelTraceID(context.Background(), "bad"))
}

func TestContextWithOTelTraceID_RootSpanInheritsTraceID(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(newSampler(1)),
	)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	id := GenerateTraceID()
	ctx := ContextWithOTelTraceID(context.Background(), id)
	_, span := tp.Tracer("test").Start(ctx, "travis version")
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, id, spans[0].SpanContext.TraceID().String())
	assert.True(t, spans[0].Parent.IsValid())
}

func TestNewSpanID(t *testing.T) {
	a, b := newSpanID(), newSpanID()
	assert.True(t, a.IsValid())
	assert.NotEqual(t, a, b)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Enabled: true, Endpoint: "http://jaeger:4318", ServiceName: "travis", Timeout: time.Second, SamplingRate: 0.5}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"валидная", func(*Config) {}, nil},
		{"выключен", func(c *Config) { *c = Config{} }, nil},
		{"нет endpoint", func(c *Config) { c.Endpoint = "" }, ErrTracingEndpointRequired},
		{"endpoint без host", func(c *Config) { c.Endpoint = "jaeger" }, ErrTracingEndpointInvalidFormat},
		{"нет service name", func(c *Config) { c.ServiceName = "" }, ErrTracingServiceNameRequired},
		{"нулевой timeout", func(c *Config) { c.Timeout = 0 }, ErrTracingTimeoutInvalid},
		{"rate больше 1", func(c *Config) { c.SamplingRate = 1.5 }, ErrTracingSamplingRateInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewTracerProvider_Disabled(t *testing.T) {
	shutdown, err := NewTracerProvider(DefaultConfig(), logging.NewNopLogger())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewTracerProvider_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true
	_, err := NewTracerProvider(cfg, logging.NewNopLogger())
	assert.ErrorIs(t, err, ErrTracingEndpointRequired)
}
