package jobshandler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Kargones/travis/internal/command"
	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/pkg/apperrors"
	"github.com/Kargones/travis/internal/pkg/output"
	"github.com/Kargones/travis/internal/pkg/testutil"
	"github.com/Kargones/travis/travis"
	"github.com/Kargones/travis/travis/travistest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(args ...string) *config.Config {
	cfg := &config.Config{Args: args}
	cfg.Retry.MaxAttempts = 1
	return cfg
}

func run(t *testing.T, h command.Handler, cfg *config.Config) (string, error) {
	t.Helper()
	var execErr error
	out := testutil.CaptureStdout(t, func() {
		execErr = h.Execute(context.Background(), cfg)
	})
	return out, execErr
}

func TestListHandler_Execute(t *testing.T) {
	mock := &travistest.MockClient{
		ListJobsFunc: func(_ context.Context, buildID int64) ([]travis.Job, error) {
			assert.Equal(t, int64(42), buildID)
			return []travis.Job{
				{ID: 7, Number: "12.1", State: travis.StatePassed, Stage: &travis.Stage{Name: "test"}},
				{ID: 8, Number: "12.2", State: travis.StateFailed, AllowFailure: true},
				{ID: 9, Number: "12.3", State: travis.StateErrored},
			}, nil
		},
	}

	out, err := run(t, &ListHandler{client: mock}, newConfig("42"))

	require.NoError(t, err)
	assert.Contains(t, out, "12.1")
	assert.Contains(t, out, "(allow_failure)")
	assert.Contains(t, out, "Заданий: 3")
	assert.Contains(t, out, "Упавших: 1")
}

func TestListHandler_Execute_EmptyJSON(t *testing.T) {
	mock := &travistest.MockClient{
		ListJobsFunc: func(context.Context, int64) ([]travis.Job, error) { return nil, nil },
	}
	cfg := newConfig("42")
	cfg.Output.Format = output.FormatJSON

	out, err := run(t, &ListHandler{client: mock}, cfg)
	require.NoError(t, err)
	assert.Contains(t, out, `"jobs": []`)
}

func TestListHandler_Execute_BadID(t *testing.T) {
	_, err := run(t, &ListHandler{client: travistest.NewMockClient()}, newConfig("-1"))
	assert.Equal(t, apperrors.ErrCommandUsage, apperrors.CodeOf(err))
}

func TestLogHandler_Execute_StreamsRawLog(t *testing.T) {
	const logText = "$ make test\nok  \tpkg\t0.01s\n"
	mock := &travistest.MockClient{
		RawLogFunc: func(_ context.Context, jobID int64) (io.ReadCloser, error) {
			assert.Equal(t, int64(7), jobID)
			return io.NopCloser(strings.NewReader(logText)), nil
		},
	}

	out, err := run(t, &LogHandler{client: mock}, newConfig("7"))

	require.NoError(t, err)
	assert.Equal(t, logText, out)
}

func TestLogHandler_Execute_JSON(t *testing.T) {
	mock := &travistest.MockClient{
		RawLogFunc: func(context.Context, int64) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("line 1\n")), nil
		},
	}
	cfg := newConfig("7")
	cfg.Output.Format = output.FormatJSON

	out, err := run(t, &LogHandler{client: mock}, cfg)
	require.NoError(t, err)

	var result struct {
		Data LogData `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, LogData{JobID: 7, Log: "line 1\n"}, result.Data)
}

func TestLogHandler_Execute_NotFound(t *testing.T) {
	mock := &travistest.MockClient{
		RawLogFunc: func(context.Context, int64) (io.ReadCloser, error) {
			return nil, &travis.Error{Kind: travis.KindClient, Code: travis.ErrTravisNotFound,
				Message: "job not found", StatusCode: 404}
		},
	}

	out, err := run(t, &LogHandler{client: mock}, newConfig("7"))

	assert.True(t, travis.IsNotFound(err))
	assert.Contains(t, out, "job-log: error")
	assert.Contains(t, out, "HTTP 404: job not found")
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestLogHandler_Execute_ReadFailure(t *testing.T) {
	mock := &travistest.MockClient{
		RawLogFunc: func(context.Context, int64) (io.ReadCloser, error) {
			return io.NopCloser(brokenReader{}), nil
		},
	}

	_, err := run(t, &LogHandler{client: mock}, newConfig("7"))
	assert.Equal(t, apperrors.ErrCommandExec, apperrors.CodeOf(err))
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return errors.New("close failed")
}

func TestLogHandler_Execute_ClosesBody(t *testing.T) {
	for _, format := range []string{output.FormatText, output.FormatJSON} {
		t.Run(format, func(t *testing.T) {
			body := &closeTracker{Reader: strings.NewReader("line 1\n")}
			mock := &travistest.MockClient{
				RawLogFunc: func(context.Context, int64) (io.ReadCloser, error) {
					return body, nil
				},
			}
			cfg := newConfig("7")
			cfg.Output.Format = format

			out, err := run(t, &LogHandler{client: mock}, cfg)
			require.NoError(t, err)
			assert.Contains(t, out, "line 1")
			assert.True(t, body.closed)
		})
	}
}
