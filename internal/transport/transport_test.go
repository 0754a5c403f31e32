package transport

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/Kargones/travis/travis"
	"github.com/Kargones/travis/travis/travistest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type recordedRequest struct {
	method, route string
	status        int
}

type fakeCollector struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (c *fakeCollector) RecordCommandEnd(string, time.Duration, bool) {}

func (c *fakeCollector) RecordRequest(method, route string, status int, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, recordedRequest{method: method, route: route, status: status})
}

func (c *fakeCollector) Push(context.Context) error { return nil }

func newRequest(t *testing.T, ctx context.Context, method, rawURL string) *http.Request {
	t.Helper()
	u, err := url.Parse(rawURL)
	require.NoError(t, err)
	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	require.NoError(t, err)
	return req
}

func TestRoute(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", "/"},
		{"/user", "/user"},
		{"/repo/octo%2Fhello/builds", "/repo/:slug/builds"},
		{"/repo/octo%2fhello", "/repo/:slug"},
		{"/build/123/restart", "/build/:id/restart"},
		{"/job/9/log.txt", "/job/:id/log.txt"},
		{"/owner/octo/repos", "/owner/:owner/repos"},
		{"/repo/octo%2Fhello/env_var/4e2f-aa", "/repo/:slug/env_var/:id"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.path))
		})
	}
}

func TestInstrumented_RecordsMetricsAndSpan(t *testing.T) {
	collector := &fakeCollector{}
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	next := travistest.StaticRecorder(http.StatusTooManyRequests, "{}", "Retry-After", "5")
	inst := NewInstrumented(next, collector)
	inst.tracer = tp.Tracer("test")

	resp, err := inst.Do(newRequest(t, context.Background(), http.MethodGet, "https://api.travis-ci.com/repo/octo%2Fhello/builds"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	require.Len(t, collector.requests, 1)
	assert.Equal(t, recordedRequest{method: "GET", route: "/repo/:slug/builds", status: 429}, collector.requests[0])

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /repo/:slug/builds", spans[0].Name)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
}

func TestInstrumented_TransportFailure(t *testing.T) {
	collector := &fakeCollector{}
	boom := errors.New("dial tcp: connection refused")
	next := travis.TransportFunc(func(*http.Request) (*http.Response, error) { return nil, boom })

	_, err := NewInstrumented(next, collector).Do(newRequest(t, context.Background(), http.MethodPost, "https://api.travis-ci.com/build/7/cancel"))

	assert.ErrorIs(t, err, boom)
	require.Len(t, collector.requests, 1)
	assert.Equal(t, recordedRequest{method: "POST", route: "/build/:id/cancel", status: 0}, collector.requests[0])
}

func TestNewRateLimited_DisabledReturnsNext(t *testing.T) {
	next := travistest.StaticRecorder(http.StatusOK, "{}")
	assert.Same(t, next, NewRateLimited(next, 0, 1))
}

func TestRateLimited_SpacesRequests(t *testing.T) {
	next := travistest.StaticRecorder(http.StatusOK, "{}")
	limited := NewRateLimited(next, 20, 1)

	start := time.Now()
	for range 3 {
		_, err := limited.Do(newRequest(t, context.Background(), http.MethodGet, "https://api.travis-ci.com/user"))
		require.NoError(t, err)
	}

	// burst 1 и 20 rps: второй и третий запросы ждут примерно по 50мс
	assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	assert.Len(t, next.Requests(), 3)
}

func TestRateLimited_CancelledContextSkipsRequest(t *testing.T) {
	next := travistest.StaticRecorder(http.StatusOK, "{}")
	limited := NewRateLimited(next, 0.001, 1)

	_, err := limited.Do(newRequest(t, context.Background(), http.MethodGet, "https://api.travis-ci.com/user"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = limited.Do(newRequest(t, ctx, http.MethodGet, "https://api.travis-ci.com/user"))

	require.Error(t, err)
	assert.Len(t, next.Requests(), 1)
}

func TestNewHTTPClient_DefaultTimeout(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewHTTPClient(0).Timeout)
	assert.Equal(t, 5*time.Second, NewHTTPClient(5*time.Second).Timeout)
}
