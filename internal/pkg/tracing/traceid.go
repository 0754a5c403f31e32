// Package tracing генерирует trace ID запуска CLI и настраивает OpenTelemetry.
//
//	traceID := tracing.GenerateTraceID()
//	ctx = tracing.WithTraceID(ctx, traceID)
package tracing

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/trace"
)

var fallbackCounter atomic.Uint64

// GenerateTraceID возвращает 32 hex символа (W3C trace-id).
func GenerateTraceID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fallbackTraceID()
	}
	return hex.EncodeToString(b)
}

// fallbackTraceID собирает ID из времени и счётчика, ровно 32 символа.
func fallbackTraceID() string {
	return fmt.Sprintf("%016x%016x", uint64(time.Now().UnixNano()), fallbackCounter.Add(1))
}

// newSpanID возвращает случайный ненулевой span ID.
func newSpanID() trace.SpanID {
	var id trace.SpanID
	if _, err := rand.Read(id[:]); err != nil || !id.IsValid() {
		binary.BigEndian.PutUint64(id[:], fallbackCounter.Add(1)|1)
	}
	return id
}

type traceIDKey struct{}

// WithTraceID сохраняет trace ID в context.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

// TraceIDFromContext возвращает trace ID или пустую строку.
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}
