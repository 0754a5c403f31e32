package progress

import (
	"log/slog"
	"os"
	"time"
)

// DefaultThrottleInterval — интервал throttling по умолчанию.
const DefaultThrottleInterval = 200 * time.Millisecond

// New создаёт подходящую реализацию Progress.
// Логика выбора:
// 1. Disabled → NoopProgress
// 2. TTY → TTYProgress
// 3. Иначе → NonTTYProgress
func New(opts Options) Progress {
	if opts.Disabled {
		return NewNoOp()
	}
	if opts.ThrottleInterval == 0 {
		opts.ThrottleInterval = DefaultThrottleInterval
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	if IsTTY(opts.Output) {
		return NewTTYProgress(opts)
	}
	return NewNonTTYProgress(opts)
}
