package transport

import (
	"net/http"
	"strings"
	"time"

	"github.com/Kargones/travis/internal/pkg/metrics"
	"github.com/Kargones/travis/internal/pkg/tracing"
	"github.com/Kargones/travis/travis"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// Instrumented записывает метрику и client span для каждого запроса.
type Instrumented struct {
	next      travis.Transport
	collector metrics.Collector
	tracer    trace.Tracer
}

var _ travis.Transport = (*Instrumented)(nil)

// NewInstrumented оборачивает next. nil collector заменяется на NopCollector.
func NewInstrumented(next travis.Transport, collector metrics.Collector) *Instrumented {
	if collector == nil {
		collector = metrics.NewNopCollector()
	}
	return &Instrumented{next: next, collector: collector, tracer: tracing.Tracer()}
}

// Do отправляет запрос и фиксирует метод, маршрут, статус и длительность.
// Сбой транспорта учитывается со статусом 0.
func (t *Instrumented) Do(req *http.Request) (*http.Response, error) {
	route := Route(req.URL.EscapedPath())
	ctx, span := t.tracer.Start(req.Context(), req.Method+" "+route,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			semconv.HTTPRequestMethodKey.String(req.Method),
			semconv.HTTPRoute(route),
			semconv.ServerAddress(req.URL.Hostname()),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := t.next.Do(req.WithContext(ctx))
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		t.collector.RecordRequest(req.Method, route, 0, elapsed)
		return resp, err
	}

	span.SetAttributes(semconv.HTTPResponseStatusCode(resp.StatusCode))
	if resp.StatusCode >= http.StatusBadRequest {
		span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	}
	if ra := resp.Header.Get("Retry-After"); ra != "" {
		span.SetAttributes(attribute.String("travis.retry_after", ra))
	}
	t.collector.RecordRequest(req.Method, route, resp.StatusCode, elapsed)
	return resp, nil
}

// Route заменяет идентификаторы в пути на плейсхолдеры, чтобы метки метрик
// не зависели от конкретных сборок и репозиториев.
//
//	/repo/octo%2Fhello/builds -> /repo/:slug/builds
//	/build/123/restart        -> /build/:id/restart
//	/owner/octo/repos         -> /owner/:owner/repos
//	/repo/1/env_var/ab-12     -> /repo/:id/env_var/:id
func Route(path string) string {
	if path == "" {
		return "/"
	}
	parts := strings.Split(path, "/")
	for i, p := range parts {
		if p == "" {
			continue
		}
		prev := ""
		if i > 0 {
			prev = parts[i-1]
		}
		switch {
		case isNumeric(p):
			parts[i] = ":id"
		case strings.Contains(strings.ToUpper(p), "%2F"):
			parts[i] = ":slug"
		case prev == "owner":
			parts[i] = ":owner"
		case prev == "env_var":
			parts[i] = ":id"
		}
	}
	return strings.Join(parts, "/")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
