package shared

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/travis"
	"github.com/cenkalti/backoff/v5"
)

// Retry выполняет op и повторяет её только при travis.KindRateLimited.
// Пауза берётся из Retry-After, а без подсказки из экспоненциального backoff.
// Если сервер просит ждать дольше MaxInterval, ошибка возвращается сразу.
// Остальные ошибки возвращаются без повторов.
func Retry[T any](ctx context.Context, rc config.RetryConfig, logger *slog.Logger, op func(ctx context.Context) (T, error)) (T, error) {
	bo := backoff.NewExponentialBackOff()
	if rc.InitialInterval > 0 {
		bo.InitialInterval = rc.InitialInterval
	}
	if rc.MaxInterval > 0 {
		bo.MaxInterval = rc.MaxInterval
	}

	var lastErr error
	attempt := func() (T, error) {
		res, err := op(ctx)
		lastErr = err
		if err == nil || !travis.IsRateLimited(err) {
			if err != nil {
				return res, backoff.Permanent(err)
			}
			return res, nil
		}

		var tErr *travis.Error
		if errors.As(err, &tErr) {
			if wait, ok := tErr.RetryAfterDuration(); ok {
				if rc.MaxInterval > 0 && wait > rc.MaxInterval {
					return res, backoff.Permanent(err)
				}
				return res, backoff.RetryAfter(ceilSeconds(wait))
			}
		}
		return res, err
	}

	notify := func(err error, wait time.Duration) {
		logger.Warn("Travis ограничил частоту запросов, повтор",
			slog.Duration("wait", wait),
			slog.String("error", err.Error()))
	}

	maxTries := rc.MaxAttempts
	if maxTries == 0 {
		maxTries = 1
	}

	res, err := backoff.Retry(ctx, attempt,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(maxTries),
		backoff.WithNotify(notify),
	)
	if err != nil {
		// RetryAfterError последней попытки не несёт исходную ошибку Travis.
		var ra *backoff.RetryAfterError
		if errors.As(err, &ra) && lastErr != nil {
			return res, lastErr
		}
	}
	return res, err
}

func ceilSeconds(d time.Duration) int {
	return max(1, int(math.Ceil(d.Seconds())))
}
