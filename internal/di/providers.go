package di

import (
	"context"
	"log/slog"

	"github.com/Kargones/travis/internal/config"
	"github.com/Kargones/travis/internal/constants"
	"github.com/Kargones/travis/internal/pkg/logging"
	"github.com/Kargones/travis/internal/pkg/metrics"
	"github.com/Kargones/travis/internal/pkg/tracing"
	"github.com/Kargones/travis/internal/transport"
	"github.com/Kargones/travis/travis"
)

// ProvideLogger создаёт Logger на основе Config.Logging.
// При nil Config используется logging.DefaultConfig().
func ProvideLogger(cfg *config.Config) logging.Logger {
	if cfg == nil {
		return logging.NewLogger(logging.DefaultConfig())
	}
	return logging.NewLogger(cfg.Logging.ToLogging())
}

// ProvideTraceID генерирует trace_id запуска.
// Формат: 32-символьный hex string (16 байт).
func ProvideTraceID() string {
	return tracing.GenerateTraceID()
}

// ProvideMetricsCollector создаёт Collector на основе Config.Metrics.
// При ошибке создания возвращает NopCollector и логирует ошибку.
func ProvideMetricsCollector(cfg *config.Config, logger logging.Logger) metrics.Collector {
	if cfg == nil {
		return metrics.NewNopCollector()
	}

	collector, err := metrics.NewCollector(cfg.Metrics.ToMetrics(), logger)
	if err != nil {
		logger.Error("ошибка создания MetricsCollector, используется NopCollector",
			slog.String("error", err.Error()),
		)
		return metrics.NewNopCollector()
	}
	return collector
}

// ProvideTracerProvider инициализирует OTel TracerProvider и возвращает shutdown.
// При ошибке возвращает nop shutdown и логирует ошибку.
func ProvideTracerProvider(cfg *config.Config, logger logging.Logger) tracing.ShutdownFunc {
	if cfg == nil {
		return nopShutdown
	}

	shutdown, err := tracing.NewTracerProvider(cfg.Tracing.ToTracing(constants.Version), logger)
	if err != nil {
		logger.Error("ошибка инициализации tracing, используется nop provider",
			slog.String("error", err.Error()),
		)
		return nopShutdown
	}
	return shutdown
}

// ProvideTransport собирает цепочку транспорта:
// RateLimited -> Instrumented -> *http.Client.
// Ожидание ограничителя не попадает в длительность запроса в метриках.
func ProvideTransport(cfg *config.Config, collector metrics.Collector) travis.Transport {
	var t config.TravisConfig
	if cfg != nil {
		t = cfg.Travis
	}
	instrumented := transport.NewInstrumented(transport.NewHTTPClient(t.Timeout), collector)
	return transport.NewRateLimited(instrumented, t.RateLimit, t.RateBurst)
}

func nopShutdown(context.Context) error { return nil }
