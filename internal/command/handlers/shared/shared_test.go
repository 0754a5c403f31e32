package shared

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/pkg/apperrors"
	"github.com/Kargones/travis/internal/pkg/logging"
	"github.com/Kargones/travis/internal/pkg/output"
	"github.com/Kargones/travis/internal/pkg/testutil"
	"github.com/Kargones/travis/internal/pkg/tracing"
	"github.com/Kargones/travis/travis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimited(retryAfter string) error {
	return &travis.Error{
		Kind:       travis.KindRateLimited,
		Code:       travis.ErrTravisRateLimited,
		Message:    "превышен лимит запросов",
		StatusCode: 429,
		RetryAfter: retryAfter,
	}
}

func fastRetry(attempts uint) config.RetryConfig {
	return config.RetryConfig{MaxAttempts: attempts, InitialInterval: time.Millisecond, MaxInterval: 5 * time.Second}
}

func TestRetry_RecoversFromRateLimit(t *testing.T) {
	calls := 0
	got, err := Retry(context.Background(), fastRetry(3), logging.NewNopLogger().Slog(), func(context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", rateLimited("")
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, calls)
}

func TestRetry_GivesUpWithTravisError(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fastRetry(2), logging.NewNopLogger().Slog(), func(context.Context) (int, error) {
		calls++
		return 0, rateLimited("")
	})

	assert.Equal(t, 2, calls)
	assert.True(t, travis.IsRateLimited(err), "наружу возвращается ошибка Travis: %v", err)
}

func TestRetry_HonoursRetryAfter(t *testing.T) {
	calls := 0
	start := time.Now()
	_, err := Retry(context.Background(), fastRetry(2), logging.NewNopLogger().Slog(), func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, rateLimited("1")
		}
		return 1, nil
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), time.Second)
}

func TestRetry_LastAttemptWithRetryAfterKeepsTravisError(t *testing.T) {
	_, err := Retry(context.Background(), fastRetry(1), logging.NewNopLogger().Slog(), func(context.Context) (int, error) {
		return 0, rateLimited("1")
	})
	var tErr *travis.Error
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, "1", tErr.RetryAfter)
}

func TestRetry_RetryAfterBeyondMaxInterval(t *testing.T) {
	calls := 0
	_, err := Retry(context.Background(), fastRetry(5), logging.NewNopLogger().Slog(), func(context.Context) (int, error) {
		calls++
		return 0, rateLimited("3600")
	})

	assert.Equal(t, 1, calls)
	assert.True(t, travis.IsRateLimited(err))
}

func TestRetry_OtherErrorsAreNotRetried(t *testing.T) {
	for _, kind := range []travis.Kind{travis.KindServer, travis.KindAuth, travis.KindTransport, travis.KindClient} {
		t.Run(kind.String(), func(t *testing.T) {
			calls := 0
			_, err := Retry(context.Background(), fastRetry(5), logging.NewNopLogger().Slog(), func(context.Context) (int, error) {
				calls++
				return 0, &travis.Error{Kind: kind}
			})
			assert.Equal(t, 1, calls)
			var tErr *travis.Error
			require.ErrorAs(t, err, &tErr)
			assert.Equal(t, kind, tErr.Kind)
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := Retry(ctx, config.RetryConfig{MaxAttempts: 10, InitialInterval: time.Hour, MaxInterval: time.Hour}, logging.NewNopLogger().Slog(),
		func(context.Context) (int, error) {
			calls++
			cancel()
			return 0, rateLimited("")
		})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestArgs(t *testing.T) {
	cfg := &config.Config{Command: "env-set", Args: []string{"a/b"}}
	err := RequireArgs(cfg, 3, "<slug> <name> <value>")
	assert.Equal(t, apperrors.ErrCommandUsage, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "travis env-set <slug> <name> <value>")
	assert.NoError(t, RequireArgs(cfg, 1, "<slug>"))

	id, err := ParseID("build id", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	for _, bad := range []string{"", "x", "-1", "0"} {
		_, err := ParseID("build id", bad)
		assert.Equal(t, apperrors.ErrCommandUsage, apperrors.CodeOf(err), bad)
	}

	assert.NoError(t, ValidateSlug("octo/hello"))
	for _, bad := range []string{"octo", "/x", "x/", "a/b/c"} {
		assert.Error(t, ValidateSlug(bad), bad)
	}
}

func TestErrorInfo(t *testing.T) {
	info := ErrorInfo(fmt.Errorf("wrap: %w", &travis.Error{Code: travis.ErrTravisNotFound, Message: "repository not found", StatusCode: 404}))
	assert.Equal(t, &output.ErrorInfo{Code: "TRAVIS.NOT_FOUND", Message: "repository not found", HTTPStatus: 404}, info)

	info = ErrorInfo(apperrors.NewAppError(apperrors.ErrCommandUsage, "использование", nil))
	assert.Equal(t, apperrors.ErrCommandUsage, info.Code)
	assert.Equal(t, "использование", info.Message)

	info = ErrorInfo(errors.New("boom"))
	assert.Equal(t, apperrors.ErrCommandExec, info.Code)
}

func TestRun_JSON(t *testing.T) {
	cfg := &config.Config{}
	cfg.Output.Format = output.FormatJSON
	ctx := tracing.WithTraceID(context.Background(), "0123456789abcdef0123456789abcdef")

	var runErr error
	out := testutil.CaptureStdout(t, func() {
		runErr = Run(ctx, cfg, "whoami", func(context.Context) (*Outcome, error) {
			return &Outcome{Data: map[string]string{"login": "octo"}}, nil
		})
	})
	require.NoError(t, runErr)

	var res output.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, output.StatusSuccess, res.Status)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", res.Metadata.TraceID)
	assert.Equal(t, travis.PublicBaseURL, res.Metadata.Endpoint)
}

func TestRun_ErrorIsReturnedAndPrinted(t *testing.T) {
	cfg := &config.Config{}
	cause := &travis.Error{Kind: travis.KindAuth, Code: travis.ErrTravisAuth, Message: "ошибка аутентификации", StatusCode: 403}

	var runErr error
	out := testutil.CaptureStdout(t, func() {
		runErr = Run(context.Background(), cfg, "whoami", func(context.Context) (*Outcome, error) {
			return nil, cause
		})
	})

	assert.ErrorIs(t, runErr, cause)
	assert.Contains(t, out, "whoami: error")
	assert.Contains(t, out, "Error [TRAVIS.AUTH_FAILED] HTTP 403: ошибка аутентификации")
}

func TestCreateClient(t *testing.T) {
	_, err := CreateClient(context.Background(), nil)
	require.Error(t, err)

	cfg := &config.Config{}
	cfg.Travis.Token = "tok"
	cfg.Travis.Endpoint = "https://travis.example.com"
	c, err := CreateClient(context.Background(), cfg)
	require.NoError(t, err)
	assert.True(t, c.Authenticated())
	assert.Equal(t, "https://travis.example.com", c.Endpoint().BaseURL)
}

func TestCredentialLabel_MasksTokens(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, "none", credentialLabel(cfg))

	cfg.Travis.GithubToken = "ghp_0123456789abcdef"
	assert.Equal(t, "github:ghp_****", credentialLabel(cfg))

	cfg.Travis.Token = "travis-token-0123456789"
	assert.Equal(t, "api:trav****", credentialLabel(cfg))
}
