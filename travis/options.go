package travis

import "log/slog"

// Option настраивает Client при создании.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	userAgent string
}

func defaultOptions() options {
	return options{
		logger:    slog.Default(),
		userAgent: DefaultUserAgent,
	}
}

// WithLogger задаёт логгер клиента. nil игнорируется.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithUserAgent задаёт User-Agent запросов. Пустая строка игнорируется.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}
